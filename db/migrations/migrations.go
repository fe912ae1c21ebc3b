package migrations

import "embed"

// FS embeds the SQL migrations of the budget config store. golang-migrate
// reads them through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
