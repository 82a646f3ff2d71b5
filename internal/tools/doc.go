// Package tools holds the static catalog of conversion tools: one immutable
// descriptor per tool, built at compile time and validated at startup.
package tools
