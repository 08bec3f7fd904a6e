package game

// Action is a single command an agent issues to its ship for one tick.
type Action int

const (
	ActionNone Action = iota
	ActionBoost
	ActionStopBoost
	ActionTurnRight
	ActionTurnLeft
	ActionStopTurn
	ActionFire
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionBoost:
		return "boost"
	case ActionStopBoost:
		return "stop_boost"
	case ActionTurnRight:
		return "turn_right"
	case ActionTurnLeft:
		return "turn_left"
	case ActionStopTurn:
		return "stop_turn"
	case ActionFire:
		return "fire"
	default:
		return "unknown"
	}
}

// applyAction carries out a on the ship. A fired particle is returned;
// unknown actions do nothing so older rounds tolerate newer agents.
func applyAction(s *Ship, a Action, tick int) *Particle {
	switch a {
	case ActionBoost:
		s.StartBoost()
	case ActionStopBoost:
		s.StopBoost()
	case ActionTurnRight:
		s.TurnRight()
	case ActionTurnLeft:
		s.TurnLeft()
	case ActionStopTurn:
		s.StopTurn()
	case ActionFire:
		if p, ok := s.Fire(tick); ok {
			return p
		}
	}
	return nil
}
