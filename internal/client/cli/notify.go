package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/facultyip/internal/common"
	"github.com/dmitrijs2005/facultyip/internal/logging"
)

// notifier prints one-line outcome messages, the terminal's toasts.
type notifier struct {
	w   io.Writer
	log logging.Logger
}

func (n *notifier) Success(msg string) {
	fmt.Fprintf(n.w, "✔ %s\n", msg)
}

// Failure shows the validation message carried by err when there is one,
// msg otherwise. The full error goes to the log only.
func (n *notifier) Failure(ctx context.Context, msg string, err error) {
	if vm, ok := common.ValidationMessage(err); ok {
		msg = vm
	}
	fmt.Fprintf(n.w, "✖ %s\n", msg)
	if err != nil {
		n.log.Warn(ctx, msg, "error", err)
	}
}
