package dialogue

import (
	"github.com/mfalcone/memoria/internal/domain"
	"github.com/mfalcone/memoria/internal/texts"
)

// questionStep is one row of the questionnaire transition table: the
// acknowledgement spoken for the answered question and the question the
// dialogue delegates to next. A zero next kind marks the terminal step.
type questionStep struct {
	ack  []texts.Key
	next domain.IntentKind
}

// questionnaire drives the ten-step story comprehension game as a plain
// transition table. Step five interleaves the second half of the story
// before handing over to question six; step ten closes the game and returns
// to the open prompt.
var questionnaire = map[domain.IntentKind]questionStep{
	domain.KindQuestion1: {ack: []texts.Key{texts.Answer1}, next: domain.KindQuestion2},
	domain.KindQuestion2: {ack: []texts.Key{texts.Answer2}, next: domain.KindQuestion3},
	domain.KindQuestion3: {ack: []texts.Key{texts.Answer3}, next: domain.KindQuestion4},
	domain.KindQuestion4: {ack: []texts.Key{texts.Answer4}, next: domain.KindQuestion5},
	domain.KindQuestion5: {
		ack: []texts.Key{
			texts.Answer5, texts.SecondGameRecap,
			texts.Story4, texts.Story5, texts.Story6,
			texts.GameInstruction,
		},
		next: domain.KindQuestion6,
	},
	domain.KindQuestion6: {ack: []texts.Key{texts.Answer6}, next: domain.KindQuestion7},
	domain.KindQuestion7: {ack: []texts.Key{texts.Answer7}, next: domain.KindQuestion8},
	domain.KindQuestion8: {ack: []texts.Key{texts.Answer8}, next: domain.KindQuestion9},
	domain.KindQuestion9: {ack: []texts.Key{texts.Answer9}, next: domain.KindQuestion10},
	domain.KindQuestion10: {
		ack: []texts.Key{texts.Answer10, texts.EndGame, texts.PostSayHelp},
	},
}

// handleQuestion answers one questionnaire step and forces the next question
// by delegation, so the platform re-enters the dialogue without the user
// having to invoke anything.
func (c *Controller) handleQuestion(kind domain.IntentKind) domain.Response {
	step, ok := questionnaire[kind]
	if !ok {
		return c.say(c.tr.T(texts.Fallback))
	}

	var speech string
	for _, key := range step.ack {
		speech += c.tr.T(key)
	}
	if step.next == domain.KindUnknown {
		return c.say(speech)
	}
	return domain.Response{
		Speech:     speech,
		Directives: []domain.Directive{domain.Delegate(step.next)},
	}
}

// handleSecondGame opens the story game: the first half of the story plus
// the instructions, then a forced delegate into question one.
func (c *Controller) handleSecondGame() domain.Response {
	speech := c.tr.T(texts.SecondGame) +
		c.tr.T(texts.Story1) + c.tr.T(texts.Story2) + c.tr.T(texts.Story3) +
		c.tr.T(texts.GameInstruction)
	return domain.Response{
		Speech:     speech,
		Directives: []domain.Directive{domain.Delegate(domain.KindQuestion1)},
	}
}
