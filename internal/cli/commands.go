package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	app "github.com/okian/leadintel/internal/app"
	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/types"
)

func newEnrichCmd(o *options) *cobra.Command {
	var (
		file    string
		retries int
	)
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Enrich contacts from a JSON file",
		Example: `  leadctl enrich -f contact.json
  leadctl enrich -f contact.json --retries 2
  leadctl enrich -f contacts.json   # array input runs as a batch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if retries < 0 {
				return fmt.Errorf("--retries must not be negative")
			}
			contacts, batch, err := readContacts(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			svc, err := o.startService(cmd)
			if err != nil {
				return err
			}
			defer svc.Stop()

			if batch {
				return enrichBatch(cmd, svc, contacts, retries)
			}
			res := enrichWithRetries(cmd.Context(), svc, contacts[0], retries)
			if err := printJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if res.Failed() {
				return fmt.Errorf("%w: %s", ErrEnrichmentFails, res.Error)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Contact JSON file, one object or an array (- for stdin)")
	cmd.Flags().IntVar(&retries, "retries", 0, "Extra attempts after a failed enrichment")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func enrichWithRetries(ctx context.Context, svc *app.Service, c model.Contact, retries int) types.EnrichmentResult {
	var res types.EnrichmentResult
	for attempt := 0; attempt <= retries; attempt++ {
		res = svc.EnrichContact(ctx, c)
		if !res.Failed() || ctx.Err() != nil {
			break
		}
	}
	return res
}

// enrichBatch runs the batch on the worker pool, then retries failed
// contacts one at a time.
func enrichBatch(cmd *cobra.Command, svc *app.Service, contacts []model.Contact, retries int) error {
	ctx := cmd.Context()
	results, err := svc.EnrichBatch(ctx, contacts)
	if err != nil {
		return err
	}
	failed := 0
	for i := range results {
		if results[i].Failed() && retries > 0 {
			results[i] = enrichWithRetries(ctx, svc, contacts[i], retries-1)
		}
		if results[i].Failed() {
			failed++
		}
	}
	if err := printJSON(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d contacts", ErrEnrichmentFails, failed, len(results))
	}
	return nil
}

func newRepliesCmd(o *options) *cobra.Command {
	var (
		file       string
		cc         model.ConversationContext
		engagement int
	)
	cmd := &cobra.Command{
		Use:   "replies",
		Short: "Rank and personalize outreach templates for a contact",
		Example: `  leadctl replies -f contact.json --stage price_objection --urgency high
  leadctl replies -f contact.json --category pricing --history "Sent intro" --data sender_name=Alex`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := readContact(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("engagement") {
				cc.EngagementScore = &engagement
			}
			svc, err := o.startService(cmd)
			if err != nil {
				return err
			}
			defer svc.Stop()

			res, err := svc.GenerateQuickReplies(cmd.Context(), c, cc)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Contact JSON file (- for stdin)")
	cmd.Flags().StringVar(&cc.ConversationStage, "stage", "", "Conversation stage, matched against template triggers")
	cmd.Flags().StringVar(&cc.UrgencyLevel, "urgency", "", "Urgency: low, medium or high")
	cmd.Flags().StringVar(&cc.Category, "category", "", "Restrict to one template category")
	cmd.Flags().StringArrayVar(&cc.ResponseHistory, "history", nil, "Prior message in the conversation (repeatable)")
	cmd.Flags().StringVar(&cc.LastMessage, "last-message", "", "The contact's most recent message")
	cmd.Flags().IntVar(&engagement, "engagement", 0, "Engagement score from a prior enrichment, used when --urgency is unset")
	cmd.Flags().StringToStringVar(&cc.CustomData, "data", nil, "Placeholder override as token=value (repeatable)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newTemplatesCmd(o *options) *cobra.Command {
	var (
		category string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List catalog templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := o.startService(cmd)
			if err != nil {
				return err
			}
			defer svc.Stop()

			ts, err := svc.Templates(category)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), ts)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "catalog %s\n", svc.CatalogVersion())
			fmt.Fprintln(w, "ID\tCATEGORY\tURGENCY\tEFFECTIVENESS\tINDUSTRIES")
			for _, t := range ts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%s\n", t.ID, t.Category, t.Urgency, t.Effectiveness, strings.Join(t.Industries, ","))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list one category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
