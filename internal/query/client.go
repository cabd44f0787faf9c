package query

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/sozercan/verdict/apimodels"
	"github.com/sozercan/verdict/internal/render"
)

// ErrSuperseded is returned by Submit when a newer submission replaced this
// one before it resolved. The view is left to the newer submission.
var ErrSuperseded = errors.New("submission superseded by a newer query")

// Verifier sends a query to the verification API.
type Verifier interface {
	Verify(ctx context.Context, q apimodels.Query) (*apimodels.VerdictResponse, error)
	Endpoint() string
}

// View is the render target of a Client. Calls are serialized by the Client.
type View interface {
	ShowLoading()
	HideLoading()
	Clear()
	ShowResult(panel render.ResultPanel)
	ShowError(panel render.ErrorPanel)
}

type Client struct {
	verifier Verifier
	view     View

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func New(verifier Verifier, view View) *Client {
	return &Client{
		verifier: verifier,
		view:     view,
	}
}

// Submit verifies text and renders the outcome on the view. Blank text is
// ignored. Starting a submission cancels the one in flight, and only the
// latest submission may touch the view once its response arrives.
func (c *Client) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	token, ctx, cancel := c.begin(ctx)
	defer cancel()

	slog.Info("Submitting query", "seq", token, "length", len(text))
	resp, err := c.verifier.Verify(ctx, apimodels.NewQuery(text))

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.seq {
		slog.Debug("Discarding stale response", "seq", token, "latest", c.seq)
		return ErrSuperseded
	}
	c.cancel = nil
	defer c.view.HideLoading()

	if err != nil {
		slog.Error("Verification request failed", "seq", token, "endpoint", c.verifier.Endpoint(), "error", err)
		c.view.ShowError(render.Error(err, c.verifier.Endpoint()))
		return fmt.Errorf("verification failed: %w", err)
	}

	slog.Info("Verification completed", "seq", token, "verdict", resp.Verdict, "confidence", resp.Confidence)
	c.view.ShowResult(render.Result(resp))
	return nil
}

func (c *Client) begin(parent context.Context) (uint64, context.Context, context.CancelFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel

	c.view.ShowLoading()
	c.view.Clear()
	return c.seq, ctx, cancel
}

// SubmitLines submits each line read from r, the way pressing Enter submits
// the input box. Lines have no length limit. Failed verifications are
// already rendered and do not stop the loop; only read errors and context
// cancellation do.
func (c *Client) SubmitLines(ctx context.Context, r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			_ = c.Submit(ctx, line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
