package sheets

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"google.golang.org/api/option"

	"faersview/internal"
	"faersview/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const testSheetID = "1jsN9Mjrudq7dK1tX7qgcARjN_YJwrmxNiSk6-p-qBk8"

func jsonResponse(status int, body string) *http.Response {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     h,
	}
}

func newTestClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	c, err := NewClientWithOptions(context.Background(),
		option.WithHTTPClient(&http.Client{Transport: rt}),
		option.WithEndpoint("https://sheets.test/"),
	)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestSpreadsheetID(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "edit url", input: "https://docs.google.com/spreadsheets/d/" + testSheetID + "/edit?usp=sharing", want: testSheetID},
		{name: "bare id", input: testSheetID, want: testSheetID},
		{name: "padded", input: "  https://docs.google.com/spreadsheets/d/" + testSheetID + "  ", want: testSheetID},
		{name: "other site", input: "https://example.com/file.csv", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SpreadsheetID(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidURL) {
					t.Fatalf("err=%v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestFetchFirstWorksheet(t *testing.T) {
	var valuesPath string
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		if !strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/"+testSheetID) {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if strings.Contains(r.URL.Path, "/values/") {
			valuesPath = r.URL.Path
			return jsonResponse(http.StatusOK, `{
				"range": "'Case List'!A1:D3",
				"majorDimension": "ROWS",
				"values": [
					["primaryid", "caseid", "assessor", "drug_seq"],
					["102854963", "10285496", "Lorrie", "1 ; 4"],
					["102854964", "10285497"]
				]
			}`), nil
		}
		return jsonResponse(http.StatusOK, `{
			"spreadsheetId": "`+testSheetID+`",
			"sheets": [
				{"properties": {"sheetId": 0, "title": "Case List"}},
				{"properties": {"sheetId": 1, "title": "Archive"}}
			]
		}`), nil
	})

	url := "https://docs.google.com/spreadsheets/d/" + testSheetID + "/edit"
	tbl, err := client.Fetch(context.Background(), url)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(valuesPath, "/values/'Case List'") {
		t.Fatalf("values path=%q", valuesPath)
	}
	if tbl.Len() != 2 {
		t.Fatalf("len=%d", tbl.Len())
	}
	if tbl.Source.Kind != internal.SourceGoogleSheets || tbl.Source.Name != url {
		t.Fatalf("source=%+v", tbl.Source)
	}
	if internal.Value(tbl.Rows[0].DrugSeq) != "1 ; 4" {
		t.Fatalf("row=%+v", tbl.Rows[0])
	}
	if tbl.Rows[1].Assessor != nil {
		t.Fatalf("trimmed trailing cells should be missing")
	}
}

func TestFetchReportsAPIError(t *testing.T) {
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, `{"error": {"code": 403, "message": "The caller does not have permission", "status": "PERMISSION_DENIED"}}`), nil
	})
	_, err := client.Fetch(context.Background(), testSheetID)
	if err == nil || !strings.Contains(err.Error(), "open spreadsheet") {
		t.Fatalf("err=%v", err)
	}
}

func TestFetchEmptyWorksheet(t *testing.T) {
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		if strings.Contains(r.URL.Path, "/values/") {
			return jsonResponse(http.StatusOK, `{"range": "Sheet1!A1:Z1000", "majorDimension": "ROWS"}`), nil
		}
		return jsonResponse(http.StatusOK, `{"sheets": [{"properties": {"title": "Sheet1"}}]}`), nil
	})
	_, err := client.Fetch(context.Background(), testSheetID)
	if !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("err=%v", err)
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(context.Background(), config.Config{})
	if !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("err=%v", err)
	}
	_, err = NewClient(context.Background(), config.Config{SheetsCredentialsJSON: `{"type": "authorized_user"}`})
	if err == nil || errors.Is(err, ErrNoCredentials) {
		t.Fatalf("non service-account credentials must be rejected, err=%v", err)
	}
}

func TestQuoteSheet(t *testing.T) {
	if got := quoteSheet("Bob's cases"); got != "'Bob''s cases'" {
		t.Fatalf("got %q", got)
	}
}
