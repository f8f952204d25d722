// Command gen writes type-safe gorm/gen query builders for the marketplace tables.
package main

import (
	"flag"

	"blvgames/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for the generated query package")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(
		model.UserModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.GameModel{},
		model.GameImageModel{},
		model.ModerationEventModel{},
		model.WhatsAppClickModel{},
		model.UserDeviceModel{},
	)

	g.Execute()
}
