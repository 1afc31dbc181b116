package cli

// RenderReport exposes the text renderer for testing
var RenderReport = renderReport
