package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	q := NoopQueryHooks{}
	q.OnAssemble(ctx, "list-all", 1, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "www.powershellgallery.com", "/api/v2/Search()")
	h.OnResponse(ctx, "GET", "www.powershellgallery.com", "/api/v2/Search()", 200, time.Second)
	h.OnError(ctx, "GET", "www.powershellgallery.com", "/api/v2/Search()", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Query().(NoopQueryHooks); !ok {
		t.Error("Query() should return NoopQueryHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customQuery := &testQueryHooks{}
	SetQueryHooks(customQuery)
	if Query() != customQuery {
		t.Error("SetQueryHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Query().(NoopQueryHooks); !ok {
		t.Error("Reset() should restore NoopQueryHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testHTTPHooks{}
	SetHTTPHooks(custom)
	SetHTTPHooks(nil)
	if HTTP() != custom {
		t.Error("SetHTTPHooks(nil) should not replace existing hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testHTTPHooks{}
	SetHTTPHooks(h)

	ctx := context.Background()
	HTTP().OnRequest(ctx, "GET", "example.com", "/Search()")
	HTTP().OnError(ctx, "GET", "example.com", "/Search()", errors.New("refused"))

	if h.requests != 1 || h.errors != 1 {
		t.Errorf("requests = %d, errors = %d; want 1, 1", h.requests, h.errors)
	}
}

type testQueryHooks struct{ NoopQueryHooks }

type testHTTPHooks struct {
	mu        sync.Mutex
	requests  int
	responses int
	errors    int
}

func (h *testHTTPHooks) OnRequest(context.Context, string, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
}

func (h *testHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses++
}

func (h *testHTTPHooks) OnError(context.Context, string, string, string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors++
}
