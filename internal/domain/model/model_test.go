package model_test

import (
	"testing"

	model "github.com/okian/leadintel/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestContact(t *testing.T) {
	convey.Convey("Given a Contact", t, func() {
		convey.Convey("When only the full name is present", func() {
			c := model.Contact{Name: "  Sarah  Jane Miller "}

			convey.Convey("Then first and last are split from it", func() {
				convey.So(c.First(), convey.ShouldEqual, "Sarah")
				convey.So(c.Last(), convey.ShouldEqual, "Jane Miller")
			})
		})

		convey.Convey("When explicit names are present", func() {
			c := model.Contact{FirstName: "Sarah", LastName: "Lee", Name: "Other Person"}

			convey.Convey("Then they win over the full name", func() {
				convey.So(c.First(), convey.ShouldEqual, "Sarah")
				convey.So(c.Last(), convey.ShouldEqual, "Lee")
			})
		})

		convey.Convey("When resolving the status", func() {
			convey.So(model.Contact{LeadStatus: "Qualified", Status: "new"}.EffectiveStatus(), convey.ShouldEqual, "qualified")
			convey.So(model.Contact{Status: " NEW "}.EffectiveStatus(), convey.ShouldEqual, "new")
			convey.So(model.Contact{}.EffectiveStatus(), convey.ShouldEqual, "")
		})

		convey.Convey("When deriving the history key", func() {
			convey.So(model.Contact{ID: "c-1", Email: "a@b.c"}.Key(), convey.ShouldEqual, "c-1")
			convey.So(model.Contact{Email: "Sarah@Example.com"}.Key(), convey.ShouldEqual, "sarah@example.com")
			convey.So(model.Contact{Phone: "+1 555"}.Key(), convey.ShouldEqual, "+1 555")
			convey.So(model.Contact{FirstName: "Sarah", Company: "Acme"}.Key(), convey.ShouldEqual, "sarah@acme")
			convey.So(model.Contact{}.Key(), convey.ShouldEqual, "anonymous")
		})
	})
}

func TestProfile(t *testing.T) {
	convey.Convey("Given a Profile", t, func() {
		convey.Convey("When it is nil", func() {
			var p *model.Profile

			convey.Convey("Then it is empty with no followers", func() {
				convey.So(p.Empty(), convey.ShouldBeTrue)
				convey.So(p.TotalFollowers(), convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When several platforms are present", func() {
			p := &model.Profile{
				Professional: &model.ProfessionalProfile{Followers: 100},
				Social: model.SocialProfiles{
					Twitter:   &model.TwitterProfile{Followers: 200},
					Facebook:  &model.FacebookProfile{Followers: 300},
					Instagram: &model.InstagramProfile{Followers: 400},
				},
			}

			convey.Convey("Then followers are summed across all of them", func() {
				convey.So(p.Empty(), convey.ShouldBeFalse)
				convey.So(p.TotalFollowers(), convey.ShouldEqual, 1000)
			})
		})

		convey.Convey("When only the company is present", func() {
			p := &model.Profile{Company: &model.CompanyProfile{Name: "Acme"}}
			convey.So(p.Empty(), convey.ShouldBeFalse)
			convey.So(p.TotalFollowers(), convey.ShouldEqual, 0)
		})
	})
}

func TestTemplateDefinition(t *testing.T) {
	convey.Convey("Given a template definition", t, func() {
		tmpl := model.TemplateDefinition{
			ID:           "t1",
			Category:     model.CategoryPricing,
			Triggers:     []string{"price_question"},
			Industries:   []string{"Healthcare"},
			LeadStatuses: []string{model.AppliesToAll},
		}

		convey.Convey("Then applicability checks follow the lists", func() {
			convey.So(tmpl.AppliesToIndustry("Healthcare"), convey.ShouldBeTrue)
			convey.So(tmpl.AppliesToIndustry("Finance"), convey.ShouldBeFalse)
			convey.So(tmpl.NamesIndustry("Healthcare"), convey.ShouldBeTrue)
			convey.So(tmpl.AppliesToStatus("qualified"), convey.ShouldBeTrue)
			convey.So(tmpl.AppliesToStatus(""), convey.ShouldBeTrue)
			convey.So(tmpl.HasTrigger("price_question"), convey.ShouldBeTrue)
			convey.So(tmpl.HasTrigger(""), convey.ShouldBeFalse)
		})

		convey.Convey("When cloned", func() {
			clone := tmpl.Clone()
			clone.Triggers[0] = "changed"

			convey.Convey("Then the original is untouched", func() {
				convey.So(tmpl.Triggers[0], convey.ShouldEqual, "price_question")
			})
		})

		convey.Convey("Then the closed sets are enforced", func() {
			convey.So(model.ValidCategory("pricing"), convey.ShouldBeTrue)
			convey.So(model.ValidCategory("spam"), convey.ShouldBeFalse)
			convey.So(model.ValidUrgency("high"), convey.ShouldBeTrue)
			convey.So(model.ValidUrgency("urgent"), convey.ShouldBeFalse)
		})
	})
}

func TestEnrichmentRecord(t *testing.T) {
	convey.Convey("Given a completed record", t, func() {
		rec := &model.EnrichmentRecord{
			ID:                 "r1",
			Status:             model.EnrichmentCompleted,
			Professional:       &model.ProfessionalProfile{JobTitle: "Owner", Skills: []string{"Sales"}},
			Company:            &model.CompanyProfile{Name: "Acme", Technologies: []string{"Slack"}},
			ContactPreferences: &model.ContactPreferences{PreferredChannel: "email"},
			EngagementScore:    40,
		}

		convey.Convey("Then Clone is deep", func() {
			cp := rec.Clone()
			cp.Professional.Skills[0] = "changed"
			cp.Company.Technologies[0] = "changed"
			cp.ContactPreferences.PreferredChannel = "phone"
			convey.So(rec.Professional.Skills[0], convey.ShouldEqual, "Sales")
			convey.So(rec.Company.Technologies[0], convey.ShouldEqual, "Slack")
			convey.So(rec.ContactPreferences.PreferredChannel, convey.ShouldEqual, "email")
			convey.So((*model.EnrichmentRecord)(nil).Clone(), convey.ShouldBeNil)
		})

		convey.Convey("Then Groups lists what it carries", func() {
			convey.So(rec.Groups(), convey.ShouldResemble, []string{model.GroupLinkedIn, model.GroupCompanyInfo, model.GroupEngagementMetrics, model.GroupContactPreferences})
		})

		convey.Convey("Then a failed record carries no groups", func() {
			failed := &model.EnrichmentRecord{Status: model.EnrichmentFailed}
			convey.So(failed.Groups(), convey.ShouldBeEmpty)
		})

		convey.Convey("When diffing against nothing", func() {
			convey.So(model.ChangedGroups(nil, rec), convey.ShouldResemble, rec.Groups())
		})

		convey.Convey("When diffing against a changed copy", func() {
			next := rec.Clone()
			next.EngagementScore = 55
			next.Social.Twitter = &model.TwitterProfile{Handle: "@acme"}

			convey.Convey("Then only the changed groups are reported", func() {
				convey.So(model.ChangedGroups(rec, next), convey.ShouldResemble, []string{model.GroupSocialMedia, model.GroupEngagementMetrics})
				convey.So(model.ChangedGroups(rec, rec.Clone()), convey.ShouldBeEmpty)
			})
		})
	})
}
