// Package agent maps free-form user requests to tools. Intent keywords are
// tried first; when none apply, tools are ranked by a keyword score against
// their names and descriptions.
package agent
