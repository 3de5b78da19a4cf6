// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "include-hidden" -> FlagIncludeHidden).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagCount         = "count"          // Output count only
	FlagFull          = "full"           // Print full documents instead of a table
	FlagIncludeHidden = "include-hidden" // Include hidden files/directories
	FlagLocal         = "local"          // Use local scope
	FlagRaw           = "raw"            // Raw output without rendering
	FlagStrict        = "strict"         // Fail on the first bad file

	// String flags

	FlagFrom  = "from"  // Earliest creation date
	FlagSince = "since" // Relative earliest creation date (7d, 4w, 3m)
	FlagTag   = "tag"   // Tag filter/value
	FlagTitle = "title" // Title filter/value
	FlagTo    = "to"    // Latest creation date
)
