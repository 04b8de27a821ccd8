package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"faersview/internal"
	"faersview/internal/config"
	"faersview/internal/table"
)

var (
	ErrNoCredentials = errors.New("google sheets credentials not configured: set GOOGLE_SHEETS_CREDENTIALS_FILE or GOOGLE_SHEETS_CREDENTIALS_JSON")
	ErrInvalidURL    = errors.New("not a google sheets url or spreadsheet id")
	ErrEmptySheet    = errors.New("worksheet is empty")
)

var (
	reSheetURL = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)
	reSheetID  = regexp.MustCompile(`^[a-zA-Z0-9_-]{20,}$`)
)

// Scopes requested for the service account. Both are read-only.
var Scopes = []string{gsheets.SpreadsheetsReadonlyScope, gsheets.DriveReadonlyScope}

// Fetcher loads the first worksheet of a spreadsheet as a table.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*table.Table, error)
}

type Client struct {
	service *gsheets.Service
	now     func() time.Time
}

// NewClient authenticates with service-account credentials supplied through
// configuration. There is no built-in credential.
func NewClient(ctx context.Context, cfg config.Config) (*Client, error) {
	data, err := credentialsJSON(cfg)
	if err != nil {
		return nil, err
	}
	jwtCfg, err := google.JWTConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	return NewClientWithOptions(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
}

func NewClientWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{service: svc, now: time.Now}, nil
}

func credentialsJSON(cfg config.Config) ([]byte, error) {
	if strings.TrimSpace(cfg.SheetsCredentialsJSON) != "" {
		return []byte(cfg.SheetsCredentialsJSON), nil
	}
	if strings.TrimSpace(cfg.SheetsCredentialsFile) == "" {
		return nil, ErrNoCredentials
	}
	data, err := os.ReadFile(cfg.SheetsCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	return data, nil
}

// SpreadsheetID extracts the spreadsheet ID from a sharing URL. A bare ID is
// accepted as is.
func SpreadsheetID(url string) (string, error) {
	url = strings.TrimSpace(url)
	if m := reSheetURL.FindStringSubmatch(url); len(m) == 2 {
		return m[1], nil
	}
	if reSheetID.MatchString(url) {
		return url, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidURL, url)
}

// Fetch reads every value of the first worksheet. The first row is the header.
func (c *Client) Fetch(ctx context.Context, url string) (*table.Table, error) {
	id, err := SpreadsheetID(url)
	if err != nil {
		return nil, err
	}

	ss, err := c.service.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", id, err)
	}
	if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
		return nil, fmt.Errorf("spreadsheet %s: %w", id, ErrEmptySheet)
	}
	title := ss.Sheets[0].Properties.Title

	resp, err := c.service.Spreadsheets.Values.Get(id, quoteSheet(title)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", title, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("worksheet %q: %w", title, ErrEmptySheet)
	}

	records := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		records = append(records, toStrings(row))
	}
	src := internal.TableSource{Kind: internal.SourceGoogleSheets, Name: url, LoadedAt: c.now().UTC()}
	return table.FromRecords(records[0], records[1:], src)
}

// quoteSheet makes a worksheet title usable as an A1 range.
func quoteSheet(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func toStrings(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch t := v.(type) {
		case nil:
			out[i] = ""
		case string:
			out[i] = t
		default:
			out[i] = fmt.Sprint(t)
		}
	}
	return out
}
