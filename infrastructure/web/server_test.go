package web

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"partyline/contract"
	"partyline/domain/call"
	"partyline/domain/panel"
	"partyline/domain/persona"
	pErrors "partyline/errors"
	"partyline/mocks"
	"partyline/infrastructure/simulated"
	"partyline/observability"
	"partyline/services"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	panel   *mocks.MockIPanelService
	calls   *mocks.MockICallService
	fetcher *mocks.MockPageFetcher
	handler http.Handler
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		panel:   mocks.NewMockIPanelService(ctrl),
		calls:   mocks.NewMockICallService(ctrl),
		fetcher: mocks.NewMockPageFetcher(ctrl),
	}
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f.handler = NewServer(log, persona.Default(), f.panel, f.calls, f.fetcher, observability.NewMetrics()).Router()
	return f
}

func (f fixture) do(method, target, contentType, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, r)
	return rec
}

func TestServer_Create_Call(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.calls.EXPECT().
		CreateCall(gomock.Any(), call.CreateCallCommand{URL: "https://x", Personas: []persona.ID{persona.Nerd}}).
		Return(call.Call{ID: "call-1"}, nil)

	rec := f.do(http.MethodPost, "/call", "application/json", `{"url":"https://x","personas":["nerd"]}`)

	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"id":"call-1"}`, rec.Body.String())
}

func TestServer_Membership_Routes(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	cmd := call.MembershipCommand{CallID: "call-1", Persona: persona.Chef}
	f.calls.EXPECT().AddToCall(gomock.Any(), cmd).Return(call.Call{}, nil)
	f.calls.EXPECT().RemoveFromCall(gomock.Any(), cmd).Return(call.Call{}, fmt.Errorf("%w: call-1", pErrors.ErrCallNotFound))

	rec := f.do(http.MethodPost, "/add_to_call", "application/json", `{"id":"call-1","persona":"chef"}`)
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"status":"success"}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/remove_from_call", "application/json", `{"id":"call-1","persona":"chef"}`)
	req.Equal(http.StatusNotFound, rec.Code)
	req.JSONEq(`{"status":"error","message":"Invalid call ID"}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/add_to_call", "application/json", `{not json`)
	req.Equal(http.StatusBadRequest, rec.Code)
}

func TestServer_Get_And_List_Calls(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	c := call.Call{ID: "call-1", URL: "https://x", Personas: []persona.ID{persona.Nerd}}
	f.calls.EXPECT().GetCall(gomock.Any(), call.ID("call-1")).Return(c, nil)
	f.calls.EXPECT().ListCalls(gomock.Any(), 2).Return(nil, nil)

	rec := f.do(http.MethodGet, "/calls/call-1", "", "")
	req.Equal(http.StatusOK, rec.Code)
	var got call.Call
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	req.Equal(c.ID, got.ID)
	req.Equal(c.Personas, got.Personas)

	rec = f.do(http.MethodGet, "/calls?limit=2", "", "")
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`[]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/calls?limit=zero", "", "")
	req.Equal(http.StatusBadRequest, rec.Code)
}

func TestServer_Scrape(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.fetcher.EXPECT().Fetch(gomock.Any(), "https://x").Return("# Title", nil)

	rec := f.do(http.MethodPost, "/scrape", "application/json", `{"url":"https://x"}`)
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"result":"# Title"}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/scrape", "application/json", `{}`)
	req.Equal(http.StatusBadRequest, rec.Code)
}

func TestServer_Panel_Actions(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	view := panel.View{URL: "https://x", Button: panel.Button{Mode: panel.ButtonCall, Label: panel.CallButtonLabel(0)}}
	f.panel.EXPECT().View().Return(view).AnyTimes()

	// JSON clients get the view back
	f.panel.EXPECT().SetURL(gomock.Any(), "https://x")
	rec := f.do(http.MethodPost, "/panel/url", "application/json", `{"url":" https://x "}`)
	req.Equal(http.StatusOK, rec.Code)
	var got panel.View
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	req.Equal("https://x", got.URL)

	// Panel errors keep their status
	f.panel.EXPECT().AddToCall(gomock.Any(), persona.Nerd).Return(pErrors.ErrNoActiveCall)
	rec = f.do(http.MethodPost, "/panel/personas/nerd/add", "application/json", "")
	req.Equal(http.StatusConflict, rec.Code)

	// Forms are redirected to the page
	f.panel.EXPECT().Toggle(gomock.Any(), persona.Chef).Return(nil)
	rec = f.do(http.MethodPost, "/panel/personas/chef/toggle", "application/x-www-form-urlencoded", "")
	req.Equal(http.StatusSeeOther, rec.Code)
	req.Equal("/", rec.Header().Get("Location"))

	f.panel.EXPECT().SetURL(gomock.Any(), "https://y")
	rec = f.do(http.MethodPost, "/panel/url", "application/x-www-form-urlencoded", url.Values{"url": {"https://y"}}.Encode())
	req.Equal(http.StatusSeeOther, rec.Code)

	f.panel.EXPECT().PressCallButton(gomock.Any()).Return(pErrors.ErrInvalidCallRequest)
	rec = f.do(http.MethodPost, "/panel/call-button", "application/json", "")
	req.Equal(http.StatusBadRequest, rec.Code)

	f.panel.EXPECT().RemoveFromCall(gomock.Any(), persona.Dancer).Return(nil)
	rec = f.do(http.MethodPost, "/panel/personas/dancer/hangup", "application/json", "")
	req.Equal(http.StatusOK, rec.Code)

	f.panel.EXPECT().Reset(gomock.Any())
	rec = f.do(http.MethodPost, "/panel/reset", "application/json", "")
	req.Equal(http.StatusOK, rec.Code)
}

func TestServer_Page_Renders_View(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	catalog := persona.Default()
	state := panel.NewState(catalog, time.Second)
	state.URL = "https://x"
	state.Selected[persona.Nerd] = struct{}{}
	state.Alert = panel.CallFailedAlert
	f.panel.EXPECT().View().Return(panel.Render(state))

	rec := f.do(http.MethodGet, "/", "", "")

	req.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	req.Contains(body, "Call the Party Line (1 persona)")
	req.Contains(body, `id="persona:nerd:checkbox" checked`)
	req.Contains(body, `aria-live="polite"`)
	req.Contains(body, "Call failed")
}

func TestServer_Panel_Events_Stream(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Given a panel that pushes one diff right after the subscription
	var sink contract.ChangeSink
	f.panel.EXPECT().View().Return(panel.View{URL: "https://x"}).AnyTimes()
	f.panel.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(s contract.ChangeSink) func() {
		sink = s
		s.Render([]panel.Change{{Element: "url-input", Property: "value", Value: "https://y"}})
		return func() {}
	})

	srv := httptest.NewServer(f.handler)
	defer srv.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/panel/events", nil)
	req.NoError(err)

	// When reading the stream
	resp, err := http.DefaultClient.Do(r)
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal("text/event-stream", resp.Header.Get("Content-Type"))

	// Then the view comes first, then the diff
	var names []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() && len(names) < 2 {
		if name, ok := strings.CutPrefix(scanner.Text(), "event: "); ok {
			names = append(names, name)
		}
	}
	req.Equal([]string{"view", "changes"}, names)
	req.NotNil(sink)
}

func TestChangeStream_Overflow(t *testing.T) {
	req := require.New(t)
	stream := newChangeStream(1)

	stream.Render([]panel.Change{{Element: "a"}})
	stream.Render([]panel.Change{{Element: "b"}})
	stream.Render([]panel.Change{{Element: "c"}})

	req.Len(stream.changes, 1)
	req.Len(stream.overflow, 1)
}

func TestServer_Panel_Events_Resync_Drops_Stale_Diffs(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Given a client that fell behind: more diffs than the stream buffers
	f.panel.EXPECT().View().Return(panel.View{URL: "latest"}).AnyTimes()
	f.panel.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(s contract.ChangeSink) func() {
		for i := 0; i < streamBuffer+2; i++ {
			s.Render([]panel.Change{{Element: "url-input", Property: "value", Value: fmt.Sprintf("v%d", i)}})
		}
		return func() {}
	})

	srv := httptest.NewServer(f.handler)
	defer srv.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/panel/events", nil)
	req.NoError(err)
	resp, err := http.DefaultClient.Do(r)
	req.NoError(err)
	defer resp.Body.Close()

	// When reading until the stream goes idle
	var names []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		if name, ok := strings.CutPrefix(scanner.Text(), "event: "); ok {
			names = append(names, name)
		}
	}

	// Then the resync view is the last event: nothing older follows it
	req.GreaterOrEqual(len(names), 2)
	req.Equal("view", names[0])
	req.Equal("view", names[len(names)-1])
}

func TestChangeStream_Drain(t *testing.T) {
	req := require.New(t)
	stream := newChangeStream(4)
	stream.Render([]panel.Change{{Element: "a"}})
	stream.Render([]panel.Change{{Element: "b"}})

	req.Equal(2, stream.drain())
	req.Empty(stream.changes)
}

func TestServer_Call_Button_Outlives_Aborted_Request(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	backend := simulated.NewBackend(log, 100*time.Millisecond, 10*time.Millisecond)
	panelService := services.NewPanelService(log, persona.Default(), backend, panel.ToggleLocal, time.Second)
	handler := NewServer(log, persona.Default(), panelService, nil, nil, nil).Router()

	panelService.SetURL(context.Background(), "https://x")
	req.NoError(panelService.Toggle(context.Background(), persona.Nerd))

	// Given a browser that aborts the request while the call is being created
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)
	r := httptest.NewRequest(http.MethodPost, "/panel/call-button", nil).WithContext(ctx)
	r.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	// When the handler returns
	handler.ServeHTTP(rec, r)

	// Then the call was still created
	view := panelService.View()
	req.NotEmpty(view.CallID)
	req.Empty(view.Alert)
	req.Equal(panel.ButtonReset, view.Button.Mode)
}

func TestServer_Health_And_Metrics(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	req.Equal(http.StatusOK, f.do(http.MethodGet, "/healthz", "", "").Code)
	rec := f.do(http.MethodGet, "/metrics", "", "")
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), "partyline_active_calls")

	rec = f.do(http.MethodGet, "/personas", "", "")
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"id":"cool-dude"`)
}
