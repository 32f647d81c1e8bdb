package arena

import (
	"fmt"

	"powerplay/domain"
)

// CommandKind はアリーナに投入する操作の種別です。
type CommandKind uint8

const (
	CommandAttack CommandKind = iota + 1
	CommandHeal
	CommandActivate
)

func (k CommandKind) String() string {
	switch k {
	case CommandAttack:
		return "attack"
	case CommandHeal:
		return "heal"
	case CommandActivate:
		return "activate"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Command はアリーナのループ上で実行されるゲーム操作です。
type Command struct {
	Kind   CommandKind
	Actor  domain.PlayerID
	Target domain.PlayerID  // Attackのみ
	Power  domain.PowerKind // Activateのみ
}

func Attack(actor, target domain.PlayerID) Command {
	return Command{Kind: CommandAttack, Actor: actor, Target: target}
}

func Heal(actor domain.PlayerID) Command {
	return Command{Kind: CommandHeal, Actor: actor}
}

func Activate(actor domain.PlayerID, power domain.PowerKind) Command {
	return Command{Kind: CommandActivate, Actor: actor, Power: power}
}
