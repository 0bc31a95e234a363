package main

import (
	"foodbridge/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.SupplierModel{},
		model.NonprofitModel{},
		model.NonprofitDocumentModel{},
		model.ProductInterestsModel{},
		model.ProductTypeModel{},
		model.PickupInfoModel{},
		model.ProductRequestModel{},
		model.AnnouncementModel{},
		model.ThreadModel{},
		model.CommentModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
