package scoring_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/random"
	"github.com/okian/leadintel/internal/domain/scoring"
)

// fixedSource always returns the same draw, clamped into range.
type fixedSource struct{ n int }

func (f fixedSource) Intn(n int) int {
	if f.n >= n {
		return n - 1
	}
	return f.n
}

func (f fixedSource) Float64() float64 { return 0 }

func profileWithFollowers(total int) *model.Profile {
	return &model.Profile{Social: model.SocialProfiles{Twitter: &model.TwitterProfile{Followers: total}}}
}

func TestBucket(t *testing.T) {
	Convey("Given follower totals on band edges", t, func() {
		cases := []struct {
			total    int
			activity string
			lo, hi   int
		}{
			{0, model.ActivityLow, 20, 50},
			{500, model.ActivityLow, 20, 50},
			{501, model.ActivityMedium, 40, 60},
			{2000, model.ActivityMedium, 40, 60},
			{2001, model.ActivityHigh, 60, 80},
			{5000, model.ActivityHigh, 60, 80},
			{5001, model.ActivityVeryHigh, 80, 100},
		}

		Convey("Then thresholds are strict", func() {
			for _, tc := range cases {
				b := scoring.Bucket(tc.total)
				So(b.Activity, ShouldEqual, tc.activity)
				So(b.Lo, ShouldEqual, tc.lo)
				So(b.Hi, ShouldEqual, tc.hi)
				So(scoring.Activity(tc.total), ShouldEqual, tc.activity)
			}
		})
	})
}

func TestEngineScore(t *testing.T) {
	Convey("Given an engine with a stub source", t, func() {
		Convey("When every draw is the lowest", func() {
			e := scoring.NewEngine(scoring.WithRandom(fixedSource{n: 0}))
			s := e.Score(profileWithFollowers(5001))

			Convey("Then scores sit on the inclusive lower bound", func() {
				So(s.EngagementScore, ShouldEqual, 80)
				So(s.InfluencerScore, ShouldEqual, 80)
				So(s.Confidence, ShouldEqual, 70)
				So(s.SocialMediaActivity, ShouldEqual, model.ActivityVeryHigh)
				So(s.TotalFollowers, ShouldEqual, 5001)
			})
		})

		Convey("When every draw is the highest", func() {
			e := scoring.NewEngine(scoring.WithRandom(fixedSource{n: 1 << 30}))
			s := e.Score(profileWithFollowers(5001))

			Convey("Then scores reach the inclusive upper bound", func() {
				So(s.EngagementScore, ShouldEqual, 100)
				So(s.InfluencerScore, ShouldEqual, 100)
				So(s.Confidence, ShouldEqual, 100)
			})
		})

		Convey("When the profile is nil", func() {
			s := scoring.NewEngine(scoring.WithRandom(fixedSource{})).Score(nil)

			Convey("Then confidence is zero in the low band", func() {
				So(s.Confidence, ShouldEqual, 0)
				So(s.TotalFollowers, ShouldEqual, 0)
				So(s.SocialMediaActivity, ShouldEqual, model.ActivityLow)
			})
		})
	})

	Convey("Given a seeded engine and many profiles", t, func() {
		e := scoring.NewEngine(scoring.WithRandom(random.NewSeeded(3)))

		Convey("Then every score is within its band and [0,100]", func() {
			for total := 0; total < 8000; total += 250 {
				s := e.Score(profileWithFollowers(total))
				b := scoring.Bucket(total)
				So(s.EngagementScore, ShouldBeBetweenOrEqual, b.Lo, b.Hi)
				So(s.InfluencerScore, ShouldBeBetweenOrEqual, b.Lo, b.Hi)
				So(s.Confidence, ShouldBeBetweenOrEqual, 70, 100)
			}
		})
	})

	Convey("Given a profile spread over every platform", t, func() {
		p := &model.Profile{
			Professional: &model.ProfessionalProfile{Followers: 100},
			Social: model.SocialProfiles{
				Twitter:   &model.TwitterProfile{Followers: 100},
				Facebook:  &model.FacebookProfile{Followers: 100},
				Instagram: &model.InstagramProfile{Followers: 201},
			},
		}

		Convey("Then LinkedIn followers count toward the band", func() {
			s := scoring.NewEngine().Score(p)
			So(s.TotalFollowers, ShouldEqual, 501)
			So(s.SocialMediaActivity, ShouldEqual, model.ActivityMedium)
		})
	})
}

func TestExpectedResponseRate(t *testing.T) {
	Convey("Given contacts with different signals", t, func() {
		full := model.Contact{Phone: "555-0100", Email: "a@b.co", Company: "Acme", LeadStatus: "Qualified"}

		Convey("Then each signal adds its bonus", func() {
			So(scoring.ExpectedResponseRate(40, model.Contact{}, scoring.QuickReplyResponseCap), ShouldEqual, 40)
			So(scoring.ExpectedResponseRate(40, model.Contact{Phone: "1"}, scoring.QuickReplyResponseCap), ShouldEqual, 45)
			So(scoring.ExpectedResponseRate(40, model.Contact{Email: "x@y.z"}, scoring.QuickReplyResponseCap), ShouldEqual, 43)
			So(scoring.ExpectedResponseRate(40, model.Contact{Company: "Acme"}, scoring.QuickReplyResponseCap), ShouldEqual, 44)
			So(scoring.ExpectedResponseRate(40, model.Contact{Status: "qualified"}, scoring.QuickReplyResponseCap), ShouldEqual, 52)
			So(scoring.ExpectedResponseRate(40, full, scoring.QuickReplyResponseCap), ShouldEqual, 64)
		})

		Convey("Then the result is capped per call path", func() {
			So(scoring.ExpectedResponseRate(80, full, scoring.QuickReplyResponseCap), ShouldEqual, 85)
			So(scoring.ExpectedResponseRate(90, full, scoring.EnrichmentResponseCap), ShouldEqual, 95)
			So(scoring.ExpectedResponseRate(-10, model.Contact{}, scoring.EnrichmentResponseCap), ShouldEqual, 0)
		})
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp bounds values", t, func() {
		So(scoring.Clamp(-1, 0, 100), ShouldEqual, 0)
		So(scoring.Clamp(101, 0, 100), ShouldEqual, 100)
		So(scoring.Clamp(50, 0, 100), ShouldEqual, 50)
	})
}
