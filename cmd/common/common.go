// Package common provides helpers shared by multiple commands.
package common

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"smartexpense/expense-cli/internal/api"
	"smartexpense/expense-cli/internal/batchstore"
	"smartexpense/expense-cli/internal/models"
	"smartexpense/expense-cli/internal/session"
)

// PrintExpenses renders the preview table for a list of normalized expenses,
// with dates in the DD-MM-YYYY display form.
func PrintExpenses(w io.Writer, entries []models.NormalizedExpense) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDATE\tCATEGORY\tAMOUNT")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, e.DisplayDate(), e.CategoryName, e.Amount.String())
	}
	tw.Flush()
}

// SubmitBatch submits the pending batch for the given user and clears it on
// success. On failure the batch is left intact so the user can retry without
// re-entering data.
func SubmitBatch(ctx context.Context, client *api.Client, store *batchstore.Store, sess *session.Session, log *logrus.Logger) error {
	batch, err := store.Load()
	if err != nil {
		return err
	}
	if batch.Len() == 0 {
		return fmt.Errorf("no valid expense data to submit")
	}

	log.WithFields(logrus.Fields{
		"batch_id": batch.ID,
		"user_id":  sess.UserID,
		"count":    batch.Len(),
	}).Info("Submitting pending batch")

	if err := client.AddExpenses(ctx, sess.UserID, batch.Entries); err != nil {
		log.WithError(err).Error("Bulk submission failed, batch kept for retry")
		return err
	}

	if err := store.Clear(); err != nil {
		log.WithError(err).Warn("Submitted but failed to clear pending batch")
	}

	log.WithField("count", batch.Len()).Info("Expenses submitted successfully")
	log.Info("Run 'expense-cli summary' to review your dashboard")
	return nil
}
