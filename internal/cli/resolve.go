package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/scotty/internal/repository"
)

// resolveLimit is how many recent runs a short ID is matched against.
const resolveLimit = 200

// resolveRunID accepts a full run ID or a unique prefix of a recent one.
func resolveRunID(ctx context.Context, app *App, input string) (string, error) {
	if _, err := app.History.Get(ctx, input); err == nil {
		return input, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	runs, err := app.History.List(ctx, resolveLimit)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, r := range runs {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("run %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("run prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
