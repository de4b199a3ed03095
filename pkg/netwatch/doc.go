// Package netwatch records the network traffic of a single page and
// post-processes it into a summary report.
//
// An Observer is scoped to one page: attach it before navigating, read
// its records after the page settles, and let it die with the page. The
// records are best-effort observations of a site the suite does not
// control; nothing here retries, intercepts or modifies traffic.
package netwatch
