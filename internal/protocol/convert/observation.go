package convert

import (
	"github.com/palemoky/tractor/internal/game"
	"github.com/palemoky/tractor/internal/protocol"
)

// ObservationToDTO 把座位观察打包为线路快照。
// 观察本身已经按座位过滤过，这里只做形式转换，不再接触对局状态。
func ObservationToDTO(obs game.Observation) protocol.ObservationDTO {
	dto := protocol.ObservationDTO{
		Seat:             int(obs.Seat),
		Stage:            obs.Stage.String(),
		Active:           int(obs.Active),
		TrumpSuit:        obs.Trump.Suit.String(),
		TrumpRank:        obs.Trump.Rank.String(),
		Hand:             SetToTokens(obs.Hand),
		ChallengerPoints: obs.ChallengerPoints,
		DefenderPoints:   obs.DefenderPoints,
		Leading:          obs.Leading,
		Final:            obs.Final,
		Done:             obs.Done,
	}

	if !obs.Kitty.IsEmpty() {
		dto.Kitty = SetToTokens(obs.Kitty)
	}
	if obs.Dealer != nil {
		dealer := int(*obs.Dealer)
		dto.Dealer = &dealer
	}
	if obs.Declaration != nil {
		dto.Declaration = &protocol.DeclarationDTO{
			Seat:  int(obs.Declaration.Seat),
			Suit:  obs.Declaration.Suit.String(),
			Level: obs.Declaration.Level,
		}
	}

	dto.CounterBids = make([]int, game.NumSeats)
	dto.Public = make([][]string, game.NumSeats)
	for i := range game.NumSeats {
		dto.CounterBids[i] = obs.CounterBids[i]
		dto.Public[i] = SetToTokens(obs.Public[i])
	}

	dto.Rounds = make([]protocol.RoundDTO, 0, len(obs.Rounds))
	for _, r := range obs.Rounds {
		dto.Rounds = append(dto.Rounds, protocol.RoundDTO{
			Leader: int(r.Leader),
			Plays:  SetsToTokens(r.Plays),
		})
	}

	dto.Actions = make([]string, 0, len(obs.Actions))
	for _, a := range obs.Actions {
		dto.Actions = append(dto.Actions, a.String())
	}
	return dto
}
