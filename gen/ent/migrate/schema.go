// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeliveryNoteCapturesColumns holds the columns for the "delivery_note_captures" table.
	DeliveryNoteCapturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "driver_id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString},
		{Name: "optimized_path", Type: field.TypeString, Nullable: true},
		{Name: "delivery_note_number", Type: field.TypeString, Nullable: true},
		{Name: "trip_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DeliveryNoteCapturesTable holds the schema information for the "delivery_note_captures" table.
	DeliveryNoteCapturesTable = &schema.Table{
		Name:       "delivery_note_captures",
		Columns:    DeliveryNoteCapturesColumns,
		PrimaryKey: []*schema.Column{DeliveryNoteCapturesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deliverynotecapture_driver_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeliveryNoteCapturesColumns[1], DeliveryNoteCapturesColumns[8]},
			},
			{
				Name:    "deliverynotecapture_status",
				Unique:  false,
				Columns: []*schema.Column{DeliveryNoteCapturesColumns[6]},
			},
		},
	}
	// OcrSettingsColumns holds the columns for the "ocr_settings" table.
	OcrSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "function", Type: field.TypeString},
		{Name: "prompt_template", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "json_example", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OcrSettingsTable holds the schema information for the "ocr_settings" table.
	OcrSettingsTable = &schema.Table{
		Name:       "ocr_settings",
		Columns:    OcrSettingsColumns,
		PrimaryKey: []*schema.Column{OcrSettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ocrsetting_function",
				Unique:  true,
				Columns: []*schema.Column{OcrSettingsColumns[1]},
			},
		},
	}
	// TollsColumns holds the columns for the "tolls" table.
	TollsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "transaction_date", Type: field.TypeTime},
		{Name: "tolling_point", Type: field.TypeString, Nullable: true},
		{Name: "etag_id", Type: field.TypeString},
		{Name: "net_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "capture_id", Type: field.TypeUUID},
		{Name: "page_result_id", Type: field.TypeUUID},
		{Name: "asset_id", Type: field.TypeUUID, Nullable: true},
		{Name: "driver_id", Type: field.TypeUUID, Nullable: true},
		{Name: "process_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "expense_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TollsTable holds the schema information for the "tolls" table.
	TollsTable = &schema.Table{
		Name:       "tolls",
		Columns:    TollsColumns,
		PrimaryKey: []*schema.Column{TollsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toll_transaction_date_etag_id",
				Unique:  true,
				Columns: []*schema.Column{TollsColumns[1], TollsColumns[3]},
			},
			{
				Name:    "toll_capture_id",
				Unique:  false,
				Columns: []*schema.Column{TollsColumns[5]},
			},
			{
				Name:    "toll_page_result_id",
				Unique:  false,
				Columns: []*schema.Column{TollsColumns[6]},
			},
		},
	}
	// TollCapturesColumns holds the columns for the "toll_captures" table.
	TollCapturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "driver_id", Type: field.TypeUUID},
		{Name: "asset_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_path", Type: field.TypeString},
		{Name: "total_records", Type: field.TypeInt, Default: 0},
		{Name: "progress_count", Type: field.TypeString, Default: ""},
		{Name: "processed_pages", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TollCapturesTable holds the schema information for the "toll_captures" table.
	TollCapturesTable = &schema.Table{
		Name:       "toll_captures",
		Columns:    TollCapturesColumns,
		PrimaryKey: []*schema.Column{TollCapturesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tollcapture_driver_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TollCapturesColumns[1], TollCapturesColumns[9]},
			},
			{
				Name:    "tollcapture_status",
				Unique:  false,
				Columns: []*schema.Column{TollCapturesColumns[7]},
			},
		},
	}
	// TollPageResultsColumns holds the columns for the "toll_page_results" table.
	TollPageResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "capture_id", Type: field.TypeUUID},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "base64_image", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TollPageResultsTable holds the schema information for the "toll_page_results" table.
	TollPageResultsTable = &schema.Table{
		Name:       "toll_page_results",
		Columns:    TollPageResultsColumns,
		PrimaryKey: []*schema.Column{TollPageResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tollpageresult_capture_id_page_number",
				Unique:  true,
				Columns: []*schema.Column{TollPageResultsColumns[1], TollPageResultsColumns[2]},
			},
			{
				Name:    "tollpageresult_capture_id_status",
				Unique:  false,
				Columns: []*schema.Column{TollPageResultsColumns[1], TollPageResultsColumns[4]},
			},
		},
	}
	// TollsStagingColumns holds the columns for the "tolls_staging" table.
	TollsStagingColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "capture_id", Type: field.TypeUUID},
		{Name: "page_result_id", Type: field.TypeUUID},
		{Name: "ai_response", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TollsStagingTable holds the schema information for the "tolls_staging" table.
	TollsStagingTable = &schema.Table{
		Name:       "tolls_staging",
		Columns:    TollsStagingColumns,
		PrimaryKey: []*schema.Column{TollsStagingColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tollsstaging_page_result_id",
				Unique:  true,
				Columns: []*schema.Column{TollsStagingColumns[2]},
			},
			{
				Name:    "tollsstaging_capture_id_status",
				Unique:  false,
				Columns: []*schema.Column{TollsStagingColumns[1], TollsStagingColumns[4]},
			},
		},
	}
	// TransportationAssetsColumns holds the columns for the "transportation_assets" table.
	TransportationAssetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "truck_number", Type: field.TypeString},
		{Name: "etag_id", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TransportationAssetsTable holds the schema information for the "transportation_assets" table.
	TransportationAssetsTable = &schema.Table{
		Name:       "transportation_assets",
		Columns:    TransportationAssetsColumns,
		PrimaryKey: []*schema.Column{TransportationAssetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transportationasset_truck_number",
				Unique:  true,
				Columns: []*schema.Column{TransportationAssetsColumns[1]},
			},
			{
				Name:    "transportationasset_etag_id",
				Unique:  false,
				Columns: []*schema.Column{TransportationAssetsColumns[2]},
			},
		},
	}
	// TripsColumns holds the columns for the "trips" table.
	TripsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "driver_id", Type: field.TypeUUID},
		{Name: "capture_id", Type: field.TypeUUID, Nullable: true},
		{Name: "date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "truck_number", Type: field.TypeString, Nullable: true},
		{Name: "delivery_note_number", Type: field.TypeString, Nullable: true},
		{Name: "odo_start", Type: field.TypeInt, Nullable: true},
		{Name: "odo_end", Type: field.TypeInt, Nullable: true},
		{Name: "time_start", Type: field.TypeString, Nullable: true},
		{Name: "time_end", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "DRAFT"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TripsTable holds the schema information for the "trips" table.
	TripsTable = &schema.Table{
		Name:       "trips",
		Columns:    TripsColumns,
		PrimaryKey: []*schema.Column{TripsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trip_driver_id_date",
				Unique:  false,
				Columns: []*schema.Column{TripsColumns[1], TripsColumns[3]},
			},
			{
				Name:    "trip_capture_id",
				Unique:  false,
				Columns: []*schema.Column{TripsColumns[2]},
			},
		},
	}
	// TripDropsColumns holds the columns for the "trip_drops" table.
	TripDropsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "trip_id", Type: field.TypeUUID},
		{Name: "seq", Type: field.TypeInt},
		{Name: "odo_reading", Type: field.TypeInt},
	}
	// TripDropsTable holds the schema information for the "trip_drops" table.
	TripDropsTable = &schema.Table{
		Name:       "trip_drops",
		Columns:    TripDropsColumns,
		PrimaryKey: []*schema.Column{TripDropsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tripdrop_trip_id_seq",
				Unique:  true,
				Columns: []*schema.Column{TripDropsColumns[1], TripDropsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeliveryNoteCapturesTable,
		OcrSettingsTable,
		TollsTable,
		TollCapturesTable,
		TollPageResultsTable,
		TollsStagingTable,
		TransportationAssetsTable,
		TripsTable,
		TripDropsTable,
	}
)

func init() {
	DeliveryNoteCapturesTable.Annotation = &entsql.Annotation{
		Table: "delivery_note_captures",
	}
	OcrSettingsTable.Annotation = &entsql.Annotation{
		Table: "ocr_settings",
	}
	TollsTable.Annotation = &entsql.Annotation{
		Table: "tolls",
	}
	TollCapturesTable.Annotation = &entsql.Annotation{
		Table: "toll_captures",
	}
	TollPageResultsTable.Annotation = &entsql.Annotation{
		Table: "toll_page_results",
	}
	TollsStagingTable.Annotation = &entsql.Annotation{
		Table: "tolls_staging",
	}
	TransportationAssetsTable.Annotation = &entsql.Annotation{
		Table: "transportation_assets",
	}
	TripsTable.Annotation = &entsql.Annotation{
		Table: "trips",
	}
	TripDropsTable.Annotation = &entsql.Annotation{
		Table: "trip_drops",
	}
}
