package parse_test

import (
	"testing"

	"aimaturity/internal/model"
	"aimaturity/internal/parse"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScale(t *testing.T) {
	Convey("Given free-text replies to a scale question", t, func() {
		Convey("Plain integers are taken directly", func() {
			So(parse.Scale("7"), ShouldEqual, 7)
			So(parse.Scale("I'd say 8 out of 10"), ShouldEqual, 8)
		})

		Convey("Out-of-range integers clamp into 0-10", func() {
			So(parse.Scale("15"), ShouldEqual, 10)
			So(parse.Scale("we're at 100"), ShouldEqual, 10)
		})

		Convey("Verbal descriptions map through the phrase table", func() {
			So(parse.Scale("pretty good"), ShouldEqual, 7)
			So(parse.Scale("it's excellent"), ShouldEqual, 9)
			So(parse.Scale("honestly terrible"), ShouldEqual, 1)
			So(parse.Scale("we have none"), ShouldEqual, 0)
		})

		Convey("Negations are checked before their positive substrings", func() {
			So(parse.Scale("not great"), ShouldEqual, 3)
			So(parse.Scale("not good at all"), ShouldEqual, 3)
		})

		Convey("Spelled-out numbers are understood", func() {
			So(parse.Scale("about seven"), ShouldEqual, 7)
			So(parse.Scale("maybe three"), ShouldEqual, 3)
		})

		Convey("Unrecognized input falls back to the default", func() {
			So(parse.Scale("hard to say"), ShouldEqual, parse.DefaultScale)
			So(parse.Scale(""), ShouldEqual, parse.DefaultScale)
		})
	})
}

func TestYesNo(t *testing.T) {
	Convey("Given free-text replies to a yes/no question", t, func() {
		Convey("Affirmatives are recognized", func() {
			So(parse.YesNo("yes"), ShouldEqual, parse.BoolYes)
			So(parse.YesNo("Yeah, absolutely"), ShouldEqual, parse.BoolYes)
			So(parse.YesNo("we do"), ShouldEqual, parse.BoolYes)
		})

		Convey("Negatives are recognized", func() {
			So(parse.YesNo("no"), ShouldEqual, parse.BoolNo)
			So(parse.YesNo("Nope, nothing like that"), ShouldEqual, parse.BoolNo)
			So(parse.YesNo("not yet"), ShouldEqual, parse.BoolNo)
		})

		Convey("Negative phrasing wins over embedded affirmatives", func() {
			// "not really, maybe sure one day" contains "sure"
			So(parse.YesNo("not really, maybe sure one day"), ShouldEqual, parse.BoolNo)
		})

		Convey("Anything else is unclear, never coerced", func() {
			So(parse.YesNo("maybe"), ShouldEqual, parse.BoolUnclear)
			So(parse.YesNo("ask me later"), ShouldEqual, parse.BoolUnclear)
			So(parse.YesNo(""), ShouldEqual, parse.BoolUnclear)
		})
	})
}

func TestOption(t *testing.T) {
	options := []string{"No cloud", "Hybrid cloud", "Cloud-first", "Multi-cloud", "Cloud-native"}

	Convey("Given replies to a multiple-choice question", t, func() {
		Convey("Exact matches are case insensitive", func() {
			So(parse.Option("hybrid cloud", options), ShouldEqual, "Hybrid cloud")
		})

		Convey("The option may appear inside a longer reply", func() {
			So(parse.Option("we went cloud-first last year", options), ShouldEqual, "Cloud-first")
		})

		Convey("A partial reply may appear inside an option", func() {
			So(parse.Option("hybrid", options), ShouldEqual, "Hybrid cloud")
		})

		Convey("No match returns the empty string", func() {
			So(parse.Option("on mainframes", options), ShouldEqual, "")
			So(parse.Option("", options), ShouldEqual, "")
		})
	})
}

func TestAnswer(t *testing.T) {
	Convey("Given questions of each type", t, func() {
		scaleQ := model.Question{ID: "q_scale", Type: model.QuestionTypeScale}
		boolQ := model.Question{ID: "q_bool", Type: model.QuestionTypeYesNo}
		choiceQ := model.Question{ID: "q_choice", Type: model.QuestionTypeMultipleChoice,
			Options: []string{"None", "Some", "Lots"}}
		textQ := model.Question{ID: "q_text", Type: model.QuestionTypeText}

		Convey("Scale input always produces an answer", func() {
			a, ok := parse.Answer("around 6", scaleQ)
			So(ok, ShouldBeTrue)
			So(*a.Scale, ShouldEqual, 6)
		})

		Convey("Clear yes/no input produces a bool answer", func() {
			a, ok := parse.Answer("yep", boolQ)
			So(ok, ShouldBeTrue)
			So(*a.Bool, ShouldBeTrue)
		})

		Convey("Unclear yes/no input is rejected for re-prompting", func() {
			_, ok := parse.Answer("hmm", boolQ)
			So(ok, ShouldBeFalse)
		})

		Convey("Choice input resolves to the canonical option", func() {
			a, ok := parse.Answer("some", choiceQ)
			So(ok, ShouldBeTrue)
			So(a.Choice, ShouldEqual, "Some")
		})

		Convey("Text input is stored verbatim, trimmed", func() {
			a, ok := parse.Answer("  we run chatbots  ", textQ)
			So(ok, ShouldBeTrue)
			So(a.Text, ShouldEqual, "we run chatbots")
		})
	})
}
