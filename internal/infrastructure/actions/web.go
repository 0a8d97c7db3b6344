package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/browser"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

// Opener opens configured sites and raw URLs in the default browser.
type Opener struct {
	table   domain.CommandTable
	logger  ports.Logger
	openURL func(string) error
}

// NewOpener builds a browser opener over the command table.
func NewOpener(table domain.CommandTable, logger ports.Logger) *Opener {
	return &Opener{table: table, logger: logger, openURL: browser.OpenURL}
}

// OpenSite implements ports.WebOpener.
func (o *Opener) OpenSite(_ context.Context, name string) error {
	entry, ok := o.table.Website(name)
	if !ok {
		return fmt.Errorf("unknown website: %s", name)
	}
	if err := o.openURL(entry.Target); err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	o.logger.Info("website opened", map[string]interface{}{"site": name, "url": entry.Target})
	return nil
}

// OpenURL implements ports.WebOpener. Scheme-less URLs get https.
func (o *Opener) OpenURL(_ context.Context, rawURL string) error {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}
	if err := o.openURL(rawURL); err != nil {
		return fmt.Errorf("open url: %w", err)
	}
	o.logger.Info("url opened", map[string]interface{}{"url": rawURL})
	return nil
}

var _ ports.WebOpener = (*Opener)(nil)
