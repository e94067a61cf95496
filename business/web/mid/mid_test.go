package mid_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/chainlabs/chainsim/business/web/errs"
	"github.com/chainlabs/chainsim/business/web/mid"
	"github.com/chainlabs/chainsim/foundation/blockchain/consensus"
	"github.com/chainlabs/chainsim/foundation/blockchain/database"
	"github.com/chainlabs/chainsim/foundation/web"
	"go.uber.org/zap"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// serve runs the handler through the standard middleware chain and
// returns the recorded response.
func serve(handler web.Handler) *httptest.ResponseRecorder {
	log := zap.NewNop().Sugar()
	shutdown := make(chan os.Signal, 1)

	app := web.NewApp(shutdown, mid.Logger(log), mid.Errors(log), mid.Panics())
	app.Handle(http.MethodGet, "v1", "/test", handler)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/test", nil)
	app.ServeHTTP(w, r)

	return w
}

func Test_ErrorsConsensus(t *testing.T) {
	t.Log("Given the need to report failed finalization rounds to clients.")
	{
		t.Logf("\tTest 0:\tWhen a handler returns a lost delegate selection.")
		{
			handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
				return &consensus.Error{Reason: "address delegate is not a delegate for this block"}
			}

			w := serve(handler)

			if w.Code != http.StatusConflict {
				t.Errorf("\t%s\tTest 0:\tShould respond with status 409: got %d", failed, w.Code)
			} else {
				t.Logf("\t%s\tTest 0:\tShould respond with status 409.", success)
			}

			var resp errs.Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould respond with a JSON error document: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould respond with a JSON error document.", success)

			if !strings.Contains(resp.Error, "not a delegate") {
				t.Errorf("\t%s\tTest 0:\tShould carry the failure reason: got %q", failed, resp.Error)
			} else {
				t.Logf("\t%s\tTest 0:\tShould carry the failure reason.", success)
			}
		}
	}
}

func Test_ErrorsLedger(t *testing.T) {
	t.Log("Given the need to report ledger failures to clients.")
	{
		t.Logf("\tTest 0:\tWhen a handler returns an insufficient balance error.")
		{
			handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
				return &database.InsufficientBalanceError{Required: 100, Available: 10}
			}

			w := serve(handler)

			if w.Code != http.StatusBadRequest {
				t.Errorf("\t%s\tTest 0:\tShould respond with status 400: got %d", failed, w.Code)
			} else {
				t.Logf("\t%s\tTest 0:\tShould respond with status 400.", success)
			}

			var resp errs.Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould respond with a JSON error document: %v", failed, err)
			}

			if !strings.Contains(resp.Error, "insufficient funds") {
				t.Errorf("\t%s\tTest 0:\tShould carry the failure reason: got %q", failed, resp.Error)
			} else {
				t.Logf("\t%s\tTest 0:\tShould carry the failure reason.", success)
			}
		}
	}
}

func Test_ErrorsUntrusted(t *testing.T) {
	t.Log("Given the need to hide unexpected failures from clients.")
	{
		t.Logf("\tTest 0:\tWhen a handler returns an unclassified error.")
		{
			handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
				return context.DeadlineExceeded
			}

			w := serve(handler)

			if w.Code != http.StatusInternalServerError {
				t.Errorf("\t%s\tTest 0:\tShould respond with status 500: got %d", failed, w.Code)
			} else {
				t.Logf("\t%s\tTest 0:\tShould respond with status 500.", success)
			}

			var resp errs.Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould respond with a JSON error document: %v", failed, err)
			}

			if resp.Error != http.StatusText(http.StatusInternalServerError) {
				t.Errorf("\t%s\tTest 0:\tShould not leak the internal reason: got %q", failed, resp.Error)
			} else {
				t.Logf("\t%s\tTest 0:\tShould not leak the internal reason.", success)
			}
		}
	}
}
