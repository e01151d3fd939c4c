package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/config"
	"github.com/checkmate-dev/checkmate/pkg/external"
)

type stubRoundTripper struct {
	status int
	body   string
}

func (s stubRoundTripper) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(s.body))),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}, nil
}

func TestQuotas_ConsumeAndExhausted(t *testing.T) {
	q := NewQuotas(&config.ToolQuotaConfig{SearchGoogle: 1, GetWebsiteScreenshot: 0, CheckMaliciousURL: 2})

	assert.True(t, q.consume(NameSearchGoogle))
	assert.False(t, q.consume(NameSearchGoogle), "second consume should fail once quota is exhausted")

	assert.True(t, q.exhausted(NameGetWebsiteScreenshot), "zero-quota tool starts exhausted")

	assert.True(t, q.consume(NameCheckMaliciousURL))
	assert.True(t, q.consume(NameScanURL), "scan_url alias shares check_malicious_url's quota")
	assert.False(t, q.consume(NameCheckMaliciousURL))
}

func TestRegistry_AdvertisedSuppressesExhaustedTools(t *testing.T) {
	deps := Dependencies{
		Search:     external.NewSearchClient("http://example.invalid"),
		Screenshot: external.NewScreenshotClient("http://example.invalid"),
		URLScan:    external.NewURLScanClient("http://example.invalid"),
	}
	reg := NewRegistry(deps)

	quotas := NewQuotas(&config.ToolQuotaConfig{SearchGoogle: 0, GetWebsiteScreenshot: 1, CheckMaliciousURL: 1})
	tc := &Context{RequestID: "req-1", Quotas: quotas, Scratch: &Scratch{}}

	advertised := reg.Advertised(tc)
	names := map[string]bool{}
	for _, t := range advertised {
		names[t.Name] = true
	}

	assert.False(t, names[NameSearchGoogle], "exhausted tool must be suppressed from the advertised set")
	assert.True(t, names[NameGetWebsiteScreenshot])
	assert.True(t, names[NameSearchInternal], "unquota'd tools are always advertised")
}

func TestRegistry_InvokeEnforcesQuotaBeforeExecuting(t *testing.T) {
	deps := Dependencies{
		Search: &external.SearchClient{BaseURL: "http://example.invalid", HC: stubRoundTripper{status: 200, body: `{"result":{"hits":[]}}`}},
	}
	reg := NewRegistry(deps)

	quotas := NewQuotas(&config.ToolQuotaConfig{SearchGoogle: 0})
	tc := &Context{RequestID: "req-1", Quotas: quotas, Scratch: &Scratch{}}

	params, err := json.Marshal(map[string]string{"query": "is the moon made of cheese"})
	require.NoError(t, err)

	result := reg.Invoke(context.Background(), NameSearchGoogle, params, tc)
	assert.False(t, result.Success)
	assert.Equal(t, string(checkerr.QuotaExhausted), result.Error.Code)
}

func TestRegistry_InvokeUnknownTool(t *testing.T) {
	reg := NewRegistry(Dependencies{})
	tc := &Context{Quotas: &Quotas{}, Scratch: &Scratch{}}

	result := reg.Invoke(context.Background(), "not_a_real_tool", json.RawMessage(`{}`), tc)
	assert.False(t, result.Success)
	assert.Equal(t, string(checkerr.InvalidInput), result.Error.Code)
}

func TestExtractImageURLsTool(t *testing.T) {
	reg := NewRegistry(Dependencies{})
	tc := &Context{Quotas: &Quotas{}, Scratch: &Scratch{}}

	params, err := json.Marshal(map[string]string{"text": "see https://example.com/a.jpg and also (https://example.com/b.png)."})
	require.NoError(t, err)

	result := reg.Invoke(context.Background(), NameExtractImageURLs, params, tc)
	require.True(t, result.Success)

	payload, ok := result.Result.(map[string]any)
	require.True(t, ok)
	urls, ok := payload["urls"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"https://example.com/a.jpg", "https://example.com/b.png"}, urls)
}

func TestPreprocessInputsTool_RequiresLoadedScratch(t *testing.T) {
	reg := NewRegistry(Dependencies{})
	tc := &Context{Quotas: &Quotas{}, Scratch: &Scratch{}}

	result := reg.Invoke(context.Background(), NamePreprocessInputs, json.RawMessage(`{}`), tc)
	assert.False(t, result.Success)
}

func TestPreprocessInputsTool_ReturnsScratchSnapshot(t *testing.T) {
	reg := NewRegistry(Dependencies{})
	scratch := &Scratch{}
	scratch.Set("fact-check", "text", "", "", "the moon landing was faked")
	tc := &Context{Quotas: &Quotas{}, Scratch: scratch}

	result := reg.Invoke(context.Background(), NamePreprocessInputs, json.RawMessage(`{}`), tc)
	require.True(t, result.Success)

	payload, ok := result.Result.(preprocessInputsResult)
	require.True(t, ok)
	assert.Equal(t, "fact-check", payload.Intent)
	assert.Equal(t, "text", payload.Type)
}
