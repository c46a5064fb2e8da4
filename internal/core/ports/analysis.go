package ports

import "context"

// AnalysisResult is the distilled output of a chat-completion call.
type AnalysisResult struct {
	Analysis string `json:"analysis"`
	Priority string `json:"priority"`
}

// AnalysisProvider is the hosted chat-completion API used for maintenance
// photo analysis.
type AnalysisProvider interface {
	AnalyzeDescription(ctx context.Context, description, context string) (*AnalysisResult, error)
	AnalyzePhoto(ctx context.Context, base64Image, context string) (*AnalysisResult, error)
}

// AnalysisService exposes analysis operations to the transport layer, with
// response caching in front of the provider.
type AnalysisService interface {
	AnalyzeDescription(ctx context.Context, description, context string) (*AnalysisResult, error)
	AnalyzePhoto(ctx context.Context, base64Image, context string) (*AnalysisResult, error)
}
