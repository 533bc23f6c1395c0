package profile

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/leadintel/internal/domain/classify"
	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/random"
)

func newTestProvider(seed int64) *SyntheticProfileProvider {
	return NewSyntheticProfileProvider(
		WithRandom(random.NewSeeded(seed)),
		WithLatencyRange(0, 0),
		WithClock(func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }),
	)
}

func TestSyntheticProfileProvider(t *testing.T) {
	Convey("Given a synthetic provider with a fixed seed", t, func() {
		ctx := context.Background()
		p := newTestProvider(7)

		Convey("It reports the synthetic data source", func() {
			So(p.Name(), ShouldEqual, SyntheticSource)
		})

		Convey("When the contact is complete", func() {
			c := model.Contact{FirstName: "Sarah", LastName: "Connor", Company: "Bright Smiles Dental", Position: "Practice Manager", Notes: "Office in Chicago"}
			out, err := p.Synthesize(ctx, c, classify.Healthcare)

			Convey("Then every sub-profile is built", func() {
				So(err, ShouldBeNil)
				So(out.Professional, ShouldNotBeNil)
				So(out.Company, ShouldNotBeNil)
				So(out.Social.Twitter, ShouldNotBeNil)
				So(out.Social.Facebook, ShouldNotBeNil)
				So(out.Social.Instagram, ShouldNotBeNil)
			})

			Convey("Then text fields are derived from the contact", func() {
				So(out.Professional.JobTitle, ShouldEqual, "Practice Manager")
				So(out.Professional.Headline, ShouldEqual, "Practice Manager at Bright Smiles Dental")
				So(out.Professional.Summary, ShouldStartWith, "Practice Manager at Bright Smiles Dental. Passionate about ")
				So(out.Professional.ProfileURL, ShouldStartWith, "https://www.linkedin.com/in/sarah-connor-")
				So(out.Social.Twitter.Handle, ShouldStartWith, "@sarah_connor")
				So(out.Company.Website, ShouldEqual, "https://www.brightsmilesdental.com")
				So(out.Company.Industry, ShouldEqual, classify.Healthcare)
				So(out.Company.Founded, ShouldBeLessThan, 2026)
				So(len(out.Professional.Skills), ShouldEqual, skillsPerProfile)
			})

			Convey("Then the mentioned city becomes the location", func() {
				So(out.Location, ShouldEqual, "Chicago, IL")
				So(out.Company.Headquarters, ShouldEqual, "Chicago, IL")
			})
		})

		Convey("When the last name is missing", func() {
			out, err := p.Synthesize(ctx, model.Contact{FirstName: "Cher", Company: "Harbor Hotel"}, classify.Hospitality)

			Convey("Then only the company profile is built", func() {
				So(err, ShouldBeNil)
				So(out.Professional, ShouldBeNil)
				So(out.Social.Empty(), ShouldBeTrue)
				So(out.Company, ShouldNotBeNil)
			})
		})

		Convey("When a full name is split from the name field without a company", func() {
			out, err := p.Synthesize(ctx, model.Contact{Name: "Ada Lovelace"}, classify.GeneralBusiness)

			Convey("Then the professional profile uses an industry title", func() {
				So(err, ShouldBeNil)
				So(out.Company, ShouldBeNil)
				So(out.Professional, ShouldNotBeNil)
				So(industryTable[classify.GeneralBusiness].titles, ShouldContain, out.Professional.JobTitle)
				So(majorMarkets, ShouldContain, out.Location)
			})
		})

		Convey("When the contact has neither a full name nor a company", func() {
			out, err := p.Synthesize(ctx, model.Contact{FirstName: "Sam", Email: "sam@example.com"}, classify.GeneralBusiness)

			Convey("Then insufficient data is reported", func() {
				So(out, ShouldBeNil)
				So(errors.Is(err, ErrInsufficientData), ShouldBeTrue)
			})
		})

		Convey("When names have no ASCII letters or digits", func() {
			out, err := p.Synthesize(ctx, model.Contact{FirstName: "李", LastName: "王", Company: "株式会社"}, classify.Healthcare)

			Convey("Then URLs use a neutral slug and the website is left empty", func() {
				So(err, ShouldBeNil)
				urls := []string{
					out.Professional.ProfileURL,
					out.Social.Twitter.URL,
					out.Social.Facebook.URL,
					out.Social.Instagram.URL,
				}
				for _, u := range urls {
					So(u, ShouldContainSubstring, fallbackSlug)
					So(u, ShouldNotContainSubstring, "--")
					So(u, ShouldNotContainSubstring, "/_")
					So(u, ShouldNotContainSubstring, "/.")
				}
				So(out.Social.Twitter.Handle, ShouldStartWith, "@contact_contact")
				So(out.Company.Name, ShouldEqual, "株式会社")
				So(out.Company.Website, ShouldBeEmpty)
			})
		})

		Convey("When the industry is unknown", func() {
			out, err := p.Synthesize(ctx, model.Contact{Company: "Acme"}, "Aerospace")

			Convey("Then general business vocabulary is used", func() {
				So(err, ShouldBeNil)
				So(out.Company.Technologies, ShouldNotBeEmpty)
			})
		})
	})
}

func TestSyntheticDeterminism(t *testing.T) {
	Convey("Given two providers with the same seed", t, func() {
		c := model.Contact{FirstName: "Lee", LastName: "Park", Company: "Cloudline SaaS"}
		a, errA := newTestProvider(99).Synthesize(context.Background(), c, classify.Technology)
		b, errB := newTestProvider(99).Synthesize(context.Background(), c, classify.Technology)

		Convey("Then they synthesize identical profiles", func() {
			So(errA, ShouldBeNil)
			So(errB, ShouldBeNil)
			So(a, ShouldResemble, b)
		})
	})
}

func TestSyntheticCancellation(t *testing.T) {
	Convey("Given a provider with simulated latency", t, func() {
		p := NewSyntheticProfileProvider(WithLatencyRange(time.Second, 2*time.Second))

		Convey("When the context is canceled first", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			start := time.Now()
			_, err := p.Synthesize(ctx, model.Contact{Company: "Acme"}, classify.GeneralBusiness)

			Convey("Then it returns promptly with a cancel error", func() {
				So(errors.Is(err, ErrProviderCanceled), ShouldBeTrue)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(time.Since(start), ShouldBeLessThan, 500*time.Millisecond)
			})
		})
	})
}

func TestLocation(t *testing.T) {
	Convey("Given notes mentioning cities", t, func() {
		p := newTestProvider(1)

		Convey("Then abbreviations resolve", func() {
			So(p.location(model.Contact{Notes: "moving to NYC next year"}), ShouldEqual, "New York, NY")
		})

		Convey("Then the first table entry wins", func() {
			So(p.location(model.Contact{Notes: "Boston or Austin"}), ShouldEqual, "Austin, TX")
		})

		Convey("Then partial words do not match", func() {
			So(majorMarkets, ShouldContain, p.location(model.Contact{Notes: "bostonian"}))
		})
	})
}

func TestSlug(t *testing.T) {
	Convey("Slug joins words with dashes", t, func() {
		So(slug(" O'Brien  Smith "), ShouldEqual, "o-brien-smith")
		So(strings.Contains(slug("José"), " "), ShouldBeFalse)
		So(slug("李"), ShouldBeEmpty)
		So(nameSlug("李"), ShouldEqual, fallbackSlug)
		So(nameSlug("Ann"), ShouldEqual, "ann")
	})
}

type countingProvider struct {
	calls atomic.Int32
}

func (c *countingProvider) Name() string { return "counting" }

func (c *countingProvider) Synthesize(context.Context, model.Contact, string) (*model.Profile, error) {
	c.calls.Add(1)
	return &model.Profile{Location: "Denver, CO"}, nil
}

func TestRateLimitedProvider(t *testing.T) {
	Convey("Given a rate limited provider", t, func() {
		next := &countingProvider{}

		Convey("When rps is not positive", func() {
			Convey("Then the provider is returned unwrapped", func() {
				So(NewRateLimitedProvider(next, 0, 1) == Provider(next), ShouldBeTrue)
			})
		})

		Convey("When the burst is available", func() {
			p := NewRateLimitedProvider(next, 1, 2)
			_, err1 := p.Synthesize(context.Background(), model.Contact{}, "")
			_, err2 := p.Synthesize(context.Background(), model.Contact{}, "")

			Convey("Then calls pass through and keep the delegate name", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(next.calls.Load(), ShouldEqual, int32(2))
				So(p.Name(), ShouldEqual, "counting")
			})

			Convey("Then an exhausted bucket respects cancellation", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
				defer cancel()
				_, err := p.Synthesize(ctx, model.Contact{}, "")
				So(errors.Is(err, ErrProviderCanceled), ShouldBeTrue)
				So(next.calls.Load(), ShouldEqual, int32(2))
			})
		})
	})
}
