// Package cloudpick normalizes share links from cloud storage providers
// into direct-download references the backend importer can fetch.
package cloudpick
