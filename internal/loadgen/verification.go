package loadgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/types"
)

// verify checks that each accepted contact has a history entry and that the
// server counted at least as many enrichments as were answered.
func verify(ctx context.Context, client *HTTPClient, accepted []string, before types.Stats, stats *Stats) error {
	for _, id := range accepted {
		stats.HistoryChecked++
		status, body, err := client.get(ctx, historyPath(id))
		if err != nil || status != http.StatusOK {
			stats.HistoryMissing++
			continue
		}
		var resp struct {
			Entries []model.HistoryEntry `json:"entries"`
		}
		if err := json.Unmarshal(body, &resp); err != nil || len(resp.Entries) == 0 {
			stats.HistoryMissing++
		}
	}
	if stats.HistoryMissing > 0 {
		return fmt.Errorf("%w: %d of %d contacts have no history", ErrVerification, stats.HistoryMissing, stats.HistoryChecked)
	}

	after, err := checkService(ctx, client)
	if err != nil {
		return err
	}
	if delta := after.EnrichmentsTotal - before.EnrichmentsTotal; delta < int64(len(accepted)) {
		return fmt.Errorf("%w: server counted %d enrichments, %d answered", ErrVerification, delta, len(accepted))
	}
	return nil
}
