// Package assets provides page template loading.
//
// The default page template ships embedded in the binary;
// FilesystemLoader loads templates from an install tree with
// path-containment checks. Asset names are validated to prevent
// path traversal.
package assets
