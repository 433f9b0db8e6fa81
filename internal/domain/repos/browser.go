package repos

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/lumenworks/website/backend/internal/infrastructure/logging"
)

// Fetcher supplies the two remote reads the browser needs.
type Fetcher interface {
	Organization(ctx context.Context) (*Organization, error)
	Repositories(ctx context.Context) ([]Repository, error)
}

// Browser turns the remote organization data into a view model.
type Browser struct {
	fetcher Fetcher
	exclude string
	logger  *logging.Logger
}

// NewBrowser creates a browser that excludes repositories whose name
// contains exclude.
func NewBrowser(fetcher Fetcher, exclude string, logger *logging.Logger) *Browser {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Browser{
		fetcher: fetcher,
		exclude: exclude,
		logger:  logger,
	}
}

// Loading returns the initial view state.
func (b *Browser) Loading() View {
	return View{State: StateLoading}
}

// Load fetches organization metadata and repositories and derives the
// ready view. Any fetch failure produces the error state; there are no
// retries and nothing is cached.
func (b *Browser) Load(ctx context.Context) View {
	org, err := b.fetcher.Organization(ctx)
	if err != nil {
		b.logger.Warn("organization fetch failed", zap.Error(err))
		return View{State: StateError, Error: err.Error()}
	}

	list, err := b.fetcher.Repositories(ctx)
	if err != nil {
		b.logger.Warn("repository fetch failed", zap.Error(err))
		return View{State: StateError, Error: err.Error()}
	}

	return View{
		State:        StateReady,
		Organization: org,
		Repositories: Derive(list, b.exclude),
	}
}

// Derive filters out repositories whose name contains exclude and sorts
// the remainder by stargazer count descending. Order among equals is
// stable.
func Derive(list []Repository, exclude string) []Repository {
	out := make([]Repository, 0, len(list))
	for _, r := range list {
		if exclude != "" && strings.Contains(r.Name, exclude) {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stars > out[j].Stars
	})
	return out
}
