package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/leadintel/internal/adapters/http/api"
	repository "github.com/okian/leadintel/internal/adapters/repository"
	service "github.com/okian/leadintel/internal/app"
	"github.com/okian/leadintel/internal/domain/catalog"
	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/types"
)

// mockDependencies records calls and returns canned results.
type mockDependencies struct {
	enriched    []model.Contact
	lastContext model.ConversationContext
	repliesErr  error
	historyArgs []string
	historyErr  error
	templates   []model.TemplateDefinition
	templateErr error
	stats       types.Stats
}

func (m *mockDependencies) EnrichContact(_ context.Context, c model.Contact) types.EnrichmentResult {
	m.enriched = append(m.enriched, c)
	if c.FirstName == "" {
		return types.EnrichmentResult{Status: model.EnrichmentFailed, FieldsEnriched: []string{}, Error: "insufficient contact data for enrichment"}
	}
	return types.EnrichmentResult{
		EnrichmentData: &model.EnrichmentRecord{ID: "rec-1", ContactID: c.Key(), Status: model.EnrichmentCompleted},
		Confidence:     80,
		FieldsEnriched: []string{model.GroupLinkedIn, model.GroupEngagementMetrics},
		DataSource:     "synthetic",
		Status:         model.EnrichmentCompleted,
	}
}

func (m *mockDependencies) EnrichBatch(ctx context.Context, contacts []model.Contact) ([]types.EnrichmentResult, error) {
	if len(contacts) == 0 {
		return nil, service.ErrEmptyBatch
	}
	if len(contacts) > 2 {
		return nil, fmt.Errorf("%w: %d contacts, limit 2", service.ErrBatchTooLarge, len(contacts))
	}
	out := make([]types.EnrichmentResult, len(contacts))
	for i, c := range contacts {
		out[i] = m.EnrichContact(ctx, c)
	}
	return out, nil
}

func (m *mockDependencies) GenerateQuickReplies(_ context.Context, c model.Contact, cc model.ConversationContext) (types.QuickReplyResult, error) {
	m.lastContext = cc
	if m.repliesErr != nil {
		return types.QuickReplyResult{}, m.repliesErr
	}
	top := model.ScoredTemplate{TemplateDefinition: model.TemplateDefinition{ID: "t1", Body: "Hi " + c.First() + ","}, ContextScore: 90}
	return types.QuickReplyResult{
		Templates:             []model.ScoredTemplate{top},
		ContextualSuggestions: types.ContextualSuggestions{MostRelevant: &top, AlternativeOptions: []model.ScoredTemplate{}},
		ExpectedResponseRate:  85,
		Industry:              "Healthcare",
		CatalogVersion:        "v1",
	}, nil
}

func (m *mockDependencies) History(_ context.Context, contactID string, limit int) ([]model.HistoryEntry, error) {
	m.historyArgs = append(m.historyArgs, fmt.Sprintf("%s:%d", contactID, limit))
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	return []model.HistoryEntry{{ID: "h1", ContactID: contactID, FieldsChanged: []string{}, Success: true}}, nil
}

func (m *mockDependencies) Templates(category string) ([]model.TemplateDefinition, error) {
	if m.templateErr != nil {
		return nil, m.templateErr
	}
	out := make([]model.TemplateDefinition, 0, len(m.templates))
	for _, t := range m.templates {
		if category == "" || t.Category == category {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockDependencies) CatalogVersion() string { return "v1" }

func (m *mockDependencies) GetStats() types.Stats { return m.stats }

func newMux(deps *mockDependencies) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, deps).Register(context.Background(), mux)
	return mux
}

func serve(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) map[string]string {
	var out map[string]string
	So(json.Unmarshal(w.Body.Bytes(), &out), ShouldBeNil)
	return out
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := &mockDependencies{stats: types.Stats{EnrichmentsTotal: 3, CatalogVersion: "v1"}}
		mux := newMux(deps)

		Convey("Then the health endpoint serves Prometheus metrics", func() {
			w := serve(mux, http.MethodGet, "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "leadintel_")
		})

		Convey("Then the stats endpoint serves the service counters", func() {
			w := serve(mux, http.MethodGet, "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var st types.Stats
			So(json.Unmarshal(w.Body.Bytes(), &st), ShouldBeNil)
			So(st.EnrichmentsTotal, ShouldEqual, int64(3))
			So(st.CatalogVersion, ShouldEqual, "v1")
		})

		Convey("Then wrong methods are not found", func() {
			So(serve(mux, http.MethodGet, "/enrich", "").Code, ShouldEqual, http.StatusNotFound)
			So(serve(mux, http.MethodGet, "/enrich/batch", "").Code, ShouldEqual, http.StatusNotFound)
			So(serve(mux, http.MethodGet, "/quick-replies", "").Code, ShouldEqual, http.StatusNotFound)
			So(serve(mux, http.MethodPost, "/templates", "").Code, ShouldEqual, http.StatusNotFound)
			So(serve(mux, http.MethodPost, "/stats", "").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestEnrichHandler(t *testing.T) {
	Convey("Given an enrich handler", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps)

		Convey("When a contact is posted", func() {
			w := serve(mux, http.MethodPost, "/enrich", `{"firstName":"Sarah","lastName":"Johnson","company":"Bright Smiles Dental"}`)

			Convey("Then the result is returned as JSON", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "application/json; charset=utf-8")
				var res types.EnrichmentResult
				So(json.Unmarshal(w.Body.Bytes(), &res), ShouldBeNil)
				So(res.Status, ShouldEqual, model.EnrichmentCompleted)
				So(res.Confidence, ShouldEqual, 80)
				So(res.EnrichmentData.ID, ShouldEqual, "rec-1")
				So(deps.enriched[0].Company, ShouldEqual, "Bright Smiles Dental")
			})
		})

		Convey("When enrichment fails", func() {
			w := serve(mux, http.MethodPost, "/enrich", `{"notes":"nothing"}`)

			Convey("Then it is still a 200 with a failed status", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"status":"failed"`)
				So(w.Body.String(), ShouldContainSubstring, `"fieldsEnriched":[]`)
			})
		})

		Convey("When the body is not JSON", func() {
			w := serve(mux, http.MethodPost, "/enrich", `{not json`)

			Convey("Then it is a bad request", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w)["code"], ShouldEqual, "bad_request")
				So(deps.enriched, ShouldBeEmpty)
			})
		})
	})
}

func TestEnrichBatchHandler(t *testing.T) {
	Convey("Given an enrich handler", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps)

		Convey("When a batch with one bad contact is posted", func() {
			w := serve(mux, http.MethodPost, "/enrich/batch", `{"contacts":[{"firstName":"Sarah","company":"Bright Smiles Dental"},{"notes":"nothing"}]}`)

			Convey("Then results keep input order and failures are counted", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var body struct {
					Results []types.EnrichmentResult `json:"results"`
					Total   int                      `json:"total"`
					Failed  int                      `json:"failed"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body.Total, ShouldEqual, 2)
				So(body.Failed, ShouldEqual, 1)
				So(body.Results[0].Status, ShouldEqual, model.EnrichmentCompleted)
				So(body.Results[1].Status, ShouldEqual, model.EnrichmentFailed)
			})
		})

		Convey("When the batch is empty", func() {
			w := serve(mux, http.MethodPost, "/enrich/batch", `{"contacts":[]}`)

			Convey("Then it is rejected as an invalid batch", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w)["code"], ShouldEqual, "invalid_batch")
			})
		})

		Convey("When the batch exceeds the limit", func() {
			w := serve(mux, http.MethodPost, "/enrich/batch", `{"contacts":[{"id":"a"},{"id":"b"},{"id":"c"}]}`)

			Convey("Then the message names the limit", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w)["message"], ShouldContainSubstring, "limit 2")
			})
		})

		Convey("When the body is not JSON", func() {
			w := serve(mux, http.MethodPost, "/enrich/batch", `[`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w)["code"], ShouldEqual, "bad_request")
		})
	})
}

func TestRepliesHandler(t *testing.T) {
	Convey("Given a quick replies handler", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps)

		Convey("When a contact and context are posted", func() {
			w := serve(mux, http.MethodPost, "/quick-replies",
				`{"contact":{"firstName":"Sarah"},"context":{"conversationStage":"price_objection","urgencyLevel":"high","responseHistory":["hi"]}}`)

			Convey("Then the ranked replies are returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var res types.QuickReplyResult
				So(json.Unmarshal(w.Body.Bytes(), &res), ShouldBeNil)
				So(res.Templates[0].Body, ShouldEqual, "Hi Sarah,")
				So(res.ContextualSuggestions.MostRelevant.ID, ShouldEqual, "t1")
				So(res.ExpectedResponseRate, ShouldEqual, 85)
				So(deps.lastContext.ConversationStage, ShouldEqual, "price_objection")
				So(deps.lastContext.ResponseHistory, ShouldResemble, []string{"hi"})
			})
		})

		Convey("When the service reports errors", func() {
			cases := []struct {
				err    error
				status int
				code   string
			}{
				{fmt.Errorf("%w: gossip", catalog.ErrUnknownCategory), http.StatusBadRequest, "bad_request"},
				{service.ErrNoTemplates, http.StatusUnprocessableEntity, "no_templates"},
				{service.ErrNotStarted, http.StatusServiceUnavailable, "unavailable"},
				{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
			}
			for _, tc := range cases {
				deps.repliesErr = tc.err
				w := serve(mux, http.MethodPost, "/quick-replies", `{"contact":{}}`)
				So(w.Code, ShouldEqual, tc.status)
				So(decodeError(w)["code"], ShouldEqual, tc.code)
			}
		})
	})
}

func TestHistoryHandler(t *testing.T) {
	Convey("Given a history handler", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps)

		Convey("When history is requested with the default limit", func() {
			w := serve(mux, http.MethodGet, "/history/c-42", "")

			Convey("Then entries are returned for the contact", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.historyArgs, ShouldResemble, []string{"c-42:20"})
				So(w.Body.String(), ShouldContainSubstring, `"contactId":"c-42"`)
			})
		})

		Convey("When an escaped contact id and a limit are given", func() {
			w := serve(mux, http.MethodGet, "/history/sarah%40example.com?limit=5", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.historyArgs, ShouldResemble, []string{"sarah@example.com:5"})
		})

		Convey("When the request is malformed", func() {
			So(serve(mux, http.MethodGet, "/history/", "").Code, ShouldEqual, http.StatusBadRequest)
			So(serve(mux, http.MethodGet, "/history/a/b", "").Code, ShouldEqual, http.StatusBadRequest)
			So(serve(mux, http.MethodGet, "/history/c?limit=zero", "").Code, ShouldEqual, http.StatusBadRequest)
			So(serve(mux, http.MethodGet, "/history/c?limit=-1", "").Code, ShouldEqual, http.StatusBadRequest)

			w := serve(mux, http.MethodGet, "/history/c?limit=501", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w)["code"], ShouldEqual, "limit_exceeded")
			So(deps.historyArgs, ShouldBeEmpty)
		})

		Convey("When the store fails", func() {
			deps.historyErr = fmt.Errorf("%w: 0", repository.ErrInvalidLimit)
			So(serve(mux, http.MethodGet, "/history/c", "").Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestTemplatesHandler(t *testing.T) {
	Convey("Given a templates handler", t, func() {
		deps := &mockDependencies{templates: []model.TemplateDefinition{
			{ID: "a", Category: model.CategoryPricing},
			{ID: "b", Category: model.CategoryClosing},
		}}
		mux := newMux(deps)

		Convey("When every template is requested", func() {
			w := serve(mux, http.MethodGet, "/templates", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"catalogVersion":"v1"`)
			So(strings.Count(w.Body.String(), `"id":`), ShouldEqual, 2)
		})

		Convey("When one category is requested", func() {
			w := serve(mux, http.MethodGet, "/templates?category=closing", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(strings.Count(w.Body.String(), `"id":`), ShouldEqual, 1)
		})

		Convey("When the category is unknown", func() {
			deps.templateErr = fmt.Errorf("%w: gossip", catalog.ErrUnknownCategory)
			w := serve(mux, http.MethodGet, "/templates?category=gossip", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestKindErrors(t *testing.T) {
	Convey("Given kind errors", t, func() {
		cause := errors.New("eof")
		err := api.WrapKind("api.op", api.ErrBadRequest, cause)

		Convey("Then both the kind and the cause are in the chain", func() {
			So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.op: bad request: eof")
		})

		Convey("Then a kind without a cause reads cleanly", func() {
			So(api.NewKind("api.op", api.ErrUnavailable).Error(), ShouldEqual, "api.op: service unavailable")
		})

		Convey("Then Wrap keeps nil as nil", func() {
			So(api.Wrap("api.op", nil), ShouldBeNil)
			So(errors.Is(api.Wrap("api.op", cause), cause), ShouldBeTrue)
		})
	})
}
