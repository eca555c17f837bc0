package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://github.com/vango-dev/pagelayout/blob/main/docs/errors.md#"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Slot Errors (E001-E009)
	// ============================================

	"E001": {
		Category: CategorySlot,
		Message:  "Empty slot name",
		Detail:   "Every slot in a definition needs a non-empty name.",
		DocURL:   docBase + "e001",
	},
	"E002": {
		Category: CategorySlot,
		Message:  "Empty slot identity",
		Detail:   "Every slot must accept a component identity. An empty identity would match text and other non-element children.",
		DocURL:   docBase + "e002",
	},
	"E003": {
		Category: CategorySlot,
		Message:  "Duplicate slot name",
		Detail:   "Slot names must be unique within a definition.",
		DocURL:   docBase + "e003",
	},
	"E004": {
		Category: CategorySlot,
		Message:  "Unassigned children",
		Detail:   "Strict classification found element children whose identity matches no slot.",
		DocURL:   docBase + "e004",
	},

	// ============================================
	// Render Errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryRender,
		Message:  "Unknown node kind",
		Detail:   "The renderer met a node whose kind it does not know how to write.",
		DocURL:   docBase + "e020",
	},
	"E021": {
		Category: CategoryRender,
		Message:  "Render write failed",
		Detail:   "Writing rendered HTML to the output failed.",
		DocURL:   docBase + "e021",
	},

	// ============================================
	// Publish Errors (E040-E049)
	// ============================================

	"E040": {
		Category: CategoryPublish,
		Message:  "Bucket not configured",
		Detail:   "Publishing needs a target S3 bucket.",
		DocURL:   docBase + "e040",
	},
	"E041": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Detail:   "The object store rejected the upload.",
		DocURL:   docBase + "e041",
	},

	// ============================================
	// Config Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file could not be read or parsed.",
		DocURL:   docBase + "e120",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "Port must be between 0 and 65535.",
		DocURL:   docBase + "e122",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Invalid log setting",
		Detail:   "Log level must be one of debug, info, warn, error and format one of text, json.",
		DocURL:   docBase + "e123",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E141": {
		Category: CategoryCLI,
		Message:  "Config file not found",
		Detail:   "No pagelayout.json was found in the given directory.",
		DocURL:   docBase + "e141",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
