package utils

import (
	"context"
	"fmt"
	"time"

	gjwt "golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"makeyou-digital/backend/models"
)

const googleTokenURL = "https://oauth2.googleapis.com/token"

// RowAppender appends one row to a hosted spreadsheet.
type RowAppender interface {
	AppendRow(ctx context.Context, row []any) error
}

type SheetsConfig struct {
	ClientEmail   string
	PrivateKey    string
	SpreadsheetID string
	Range         string
	Timeout       time.Duration
}

// GoogleSheet appends rows with a service-account credential.
type GoogleSheet struct {
	svc           *sheets.Service
	spreadsheetID string
	rng           string
}

func NewGoogleSheet(ctx context.Context, cfg SheetsConfig) (*GoogleSheet, error) {
	conf := &gjwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   googleTokenURL,
	}
	hc := conf.Client(context.Background())
	hc.Timeout = cfg.Timeout

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(hc))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &GoogleSheet{svc: svc, spreadsheetID: cfg.SpreadsheetID, rng: cfg.Range}, nil
}

func (g *GoogleSheet) AppendRow(ctx context.Context, row []any) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, g.rng, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// Describe returns the spreadsheet title and its tab names.
func (g *GoogleSheet) Describe(ctx context.Context) (string, []string, error) {
	ss, err := g.svc.Spreadsheets.Get(g.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return "", nil, fmt.Errorf("get spreadsheet: %w", err)
	}
	tabs := make([]string, 0, len(ss.Sheets))
	for _, s := range ss.Sheets {
		if s.Properties != nil {
			tabs = append(tabs, s.Properties.Title)
		}
	}
	title := ""
	if ss.Properties != nil {
		title = ss.Properties.Title
	}
	return title, tabs, nil
}

// sheetTimeLayout renders like the en-IN locale: 19/10/2026, 3:04:05 pm.
const sheetTimeLayout = "2/1/2006, 3:04:05 pm"

// ContactRow is the spreadsheet layout for one contact submission.
func ContactRow(s models.ContactSubmission, at time.Time, loc *time.Location) []any {
	return []any{
		at.In(loc).Format(sheetTimeLayout),
		s.Name,
		s.Email,
		s.Phone,
		s.Message,
		s.CallbackOrDefault(),
	}
}
