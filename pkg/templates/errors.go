package templates

import "errors"

var (
	ErrTemplateNotFound = errors.New("templates.errors.template_not_found")
	ErrParseFailed      = errors.New("templates.errors.parse_failed")
	ErrRenderFailed     = errors.New("templates.errors.render_failed")
)
