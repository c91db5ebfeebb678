package progression

import (
	"errors"
	"fmt"
)

// XPEvent names an action that earns experience points.
type XPEvent string

// Actions that award XP.
const (
	EventCorrectAnswer       XPEvent = "correct_answer"
	EventIncorrectAnswer     XPEvent = "incorrect_answer"
	EventSessionCompleted    XPEvent = "session_completed"
	EventBattleWon           XPEvent = "battle_won"
	EventBattleParticipation XPEvent = "battle_participation"
	EventForumPost           XPEvent = "forum_post"
	EventForumComment        XPEvent = "forum_comment"
	EventDailyLogin          XPEvent = "daily_login"
	EventStreakBonus         XPEvent = "streak_bonus"
)

// ErrUnknownEvent is returned when an XP award is requested for an event
// the table does not know.
var ErrUnknownEvent = errors.New("unknown XP event")

// AwardTable holds the flat XP awards per event. Immutable after creation.
type AwardTable struct {
	CorrectAnswer       int
	IncorrectAnswer     int
	SessionCompleted    int
	BattleWon           int
	BattleParticipation int
	ForumPost           int
	ForumComment        int
	DailyLogin          int
	StreakBonus         int
}

// NewDefaultAwardTable creates the standard award table.
func NewDefaultAwardTable() *AwardTable {
	return &AwardTable{
		CorrectAnswer:       10,
		IncorrectAnswer:     2,
		SessionCompleted:    50,
		BattleWon:           100,
		BattleParticipation: 25,
		ForumPost:           15,
		ForumComment:        5,
		DailyLogin:          5,
		StreakBonus:         10,
	}
}

// Award returns the XP delta for an event.
func (t *AwardTable) Award(event XPEvent) (int, error) {
	switch event {
	case EventCorrectAnswer:
		return t.CorrectAnswer, nil
	case EventIncorrectAnswer:
		return t.IncorrectAnswer, nil
	case EventSessionCompleted:
		return t.SessionCompleted, nil
	case EventBattleWon:
		return t.BattleWon, nil
	case EventBattleParticipation:
		return t.BattleParticipation, nil
	case EventForumPost:
		return t.ForumPost, nil
	case EventForumComment:
		return t.ForumComment, nil
	case EventDailyLogin:
		return t.DailyLogin, nil
	case EventStreakBonus:
		return t.StreakBonus, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
}
