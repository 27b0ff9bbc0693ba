// Package domain contains the catalog entities the browse service reads from
// the upstream catalog API and the enriched views it derives from them. The
// types carry no infrastructure concerns beyond their JSON wire encoding.
package domain
