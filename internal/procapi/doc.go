// Package procapi talks to the remote processing backend. It uploads files
// as multipart jobs, resolves download URLs, imports files from cloud
// providers, and requests email delivery of finished downloads.
package procapi
