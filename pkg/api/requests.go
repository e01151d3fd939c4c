package api

// embeddingRequest is the POST /getEmbedding body: a thin pass-through to
// the text-embedding service fronted by pkg/external.EmbedderClient.
type embeddingRequest struct {
	Text string `json:"text" binding:"required"`
}

type embeddingResponse struct {
	Embedding []float64 `json:"embedding"`
}

// needsCheckingRequest is the POST /getNeedsChecking body: a lightweight
// standalone triage call, not part of the pipeline, so a consumer can
// pre-filter before spending a full /getAgentResult call.
type needsCheckingRequest struct {
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

type needsCheckingResponse struct {
	NeedsChecking bool   `json:"needsChecking"`
	Reason        string `json:"reason,omitempty"`
}
