package supabase

import (
	"errors"
	"fmt"

	supa "github.com/nedpals/supabase-go"

	"github.com/mukuru1/UbuzimaHC-2/internal/config"
)

// ErrNotConfigured is returned when the Supabase URL or anon key is missing
// or still holds the .env.example placeholder.
var ErrNotConfigured = errors.New("supabase is not configured")

// Client owns the Supabase SDK handle. It is constructed once at startup and
// passed to whatever needs backend access; there is no package-level instance.
type Client struct {
	Supabase *supa.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	if configured, reason := cfg.Status(); !configured {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, reason)
	}

	client := supa.CreateClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}
