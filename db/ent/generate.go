//go:build ignore

package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Regenerate the ent client into gen/ent after editing db/ent/schema.
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/fleetware/transport-ops/gen/ent",
			Schema:  "github.com/fleetware/transport-ops/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
