package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/nilaydev/legalclause/internal/observability"
	"github.com/nilaydev/legalclause/internal/redact"
)

// NoProviderMessage is the single fragment yielded when no backend has a
// credential configured.
const NoProviderMessage = "Error: no AI provider is configured. Set GAISTUDIO_KEY or GROQ_KEY."

// Router tries clients in order until one starts streaming. Fallback happens
// only on initiation failure, before any fragment has been delivered; once a
// stream has begun, a mid-stream failure ends it with one inline error
// fragment and no provider switch.
type Router struct {
	clients []Client
	metrics *observability.Metrics
}

func NewRouter(metrics *observability.Metrics, clients ...Client) *Router {
	return &Router{clients: clients, metrics: metrics}
}

// Stream never fails: exhausted or unconfigured providers degrade to a
// stream carrying a single error fragment.
func (r *Router) Stream(ctx context.Context, req Request) Stream {
	var lastErr error
	attempted := false

	for _, c := range r.clients {
		if !c.Available() {
			continue
		}
		if attempted {
			log.Printf("provider %s: falling back after initiation failure: %s", c.Name(), redact.Error(lastErr))
			if r.metrics != nil {
				r.metrics.ProviderFallbacks.Inc()
			}
		}
		attempted = true

		if r.metrics != nil {
			r.metrics.ProviderRequests.WithLabelValues(c.Name()).Inc()
		}
		s, err := c.Stream(ctx, req)
		if err != nil {
			lastErr = err
			if r.metrics != nil {
				r.metrics.ProviderErrors.WithLabelValues(c.Name(), "init").Inc()
			}
			continue
		}
		return &guardedStream{inner: s, name: c.Name(), metrics: r.metrics}
	}

	if !attempted {
		return newStaticStream(NoProviderMessage)
	}
	return newStaticStream(fmt.Sprintf("Error: all AI providers failed: %s", redact.Error(lastErr)))
}

// Complete drains a full generation into one string. Used by the learning
// content endpoints, which need whole JSON documents rather than fragments.
func (r *Router) Complete(ctx context.Context, req Request) (string, error) {
	text := Drain(r.Stream(ctx, req))
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return text, nil
}

// guardedStream enforces the mid-stream failure policy: after the first
// delivered fragment there is no provider switch, only an inline error
// fragment followed by end of stream.
type guardedStream struct {
	inner      Stream
	name       string
	metrics    *observability.Metrics
	errEmitted bool
	done       bool
}

func (g *guardedStream) Recv() (string, error) {
	if g.done {
		return "", io.EOF
	}

	frag, err := g.inner.Recv()
	if err == nil {
		return frag, nil
	}
	g.done = true
	if errors.Is(err, io.EOF) {
		return "", io.EOF
	}
	// Client disconnects surface as context cancellation; nobody is
	// listening, so end quietly.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "", io.EOF
	}

	log.Printf("provider %s: mid-stream failure: %s", g.name, redact.Error(err))
	if g.metrics != nil {
		g.metrics.ProviderErrors.WithLabelValues(g.name, "stream").Inc()
	}
	if !g.errEmitted {
		g.errEmitted = true
		return fmt.Sprintf("\nError: %s", redact.Error(err)), nil
	}
	return "", io.EOF
}

func (g *guardedStream) Close() error {
	return g.inner.Close()
}
