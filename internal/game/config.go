package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/palemoky/tractor/internal/apperrors"
	"github.com/palemoky/tractor/internal/game/card"
)

// 甩牌失败的默认惩罚值
const defaultComboPenalty = 0.1

// Config 定义一局的可调参数。零值即常规对局：级牌 2、抢庄、
// 不许抄底、不许甩牌、随机洗牌。
type Config struct {
	// DominantRank 级牌点数，默认 2
	DominantRank card.Rank

	// Dealer 固定庄家；nil 表示抢庄，亮主者坐庄
	Dealer *Position

	// EnableCounterBid 允许埋底后抄底
	EnableCounterBid bool

	// EnableCombos 允许甩牌
	EnableCombos bool

	// ComboPenalty 甩牌失败的惩罚值，默认 0.1
	ComboPenalty float64

	// NorthSouthCombosOnly 只允许南北家甩牌，东西家照常领出单个成分。
	// 用于让两套策略在甩牌规则上交替对弈。
	NorthSouthCombosOnly bool

	// Deck 预设发牌序列：前 100 张逐张发出，后 8 张为底牌。
	// 为空时随机洗牌。
	Deck card.Deck

	// Rand 随机源，决定洗牌与抢庄时的随机座位；nil 则自动生成
	Rand *rand.Rand
}

// normalize 填充默认值并校验配置
func (cfg *Config) normalize() error {
	if cfg.DominantRank == 0 {
		cfg.DominantRank = card.Rank2
	}
	if cfg.DominantRank < card.Rank2 || cfg.DominantRank > card.RankA {
		return fmt.Errorf("%w: 级牌 %v 不在 2..A 之内", apperrors.ErrBadConfig, cfg.DominantRank)
	}
	if cfg.ComboPenalty < 0 {
		return fmt.Errorf("%w: 甩牌惩罚不能为负", apperrors.ErrBadConfig)
	}
	if cfg.ComboPenalty == 0 {
		cfg.ComboPenalty = defaultComboPenalty
	}
	if cfg.Dealer != nil && (*cfg.Dealer < North || *cfg.Dealer > East) {
		return fmt.Errorf("%w: 庄家座位 %d 不存在", apperrors.ErrBadConfig, int(*cfg.Dealer))
	}
	if len(cfg.Deck) > 0 {
		if err := card.ValidatePack(cfg.Deck); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrBadConfig, err)
		}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return nil
}
