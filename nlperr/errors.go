package nlperr

import "errors"

// Sentinel errors, one per failure class of an annotation run. Errors of
// configuration, resources, document sources, annotation and storage wrap
// one of them. Write errors of the render previews are returned as is.
var (
	// ErrResourceLoad: pipeline, dictionary or vocabulary resources could not be loaded.
	ErrResourceLoad = errors.New("resource load")

	// ErrInputRead: the document source is unreadable or malformed.
	ErrInputRead = errors.New("input read")

	// ErrAnnotate: the pipeline failed on a document.
	ErrAnnotate = errors.New("annotate")

	// ErrPersist: the output or cache location could not be written.
	ErrPersist = errors.New("persist")
)
