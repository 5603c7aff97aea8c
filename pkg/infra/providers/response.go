package providers

// CompletionResponse carries the parts of a provider reply the analysis
// pipeline consumes: the reply text for normalization and the model name for
// failure logging.
type CompletionResponse struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	Response string `json:"response"`
}
