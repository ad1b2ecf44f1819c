// Package countries provides deterministic country dial-code data, search
// helpers, and a small net/http handler that returns JSON options for the
// signup country input.
//
// The default handler responds to GET and HEAD requests and supports query and
// limit parameters to filter results. The backing data is loaded from the
// embedded dataset under data/countries.yml.
package countries
