// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fleetware/transport-ops/db/ent/schema"
	"github.com/fleetware/transport-ops/gen/ent/deliverynotecapture"
	"github.com/fleetware/transport-ops/gen/ent/ocrsetting"
	"github.com/fleetware/transport-ops/gen/ent/toll"
	"github.com/fleetware/transport-ops/gen/ent/tollcapture"
	"github.com/fleetware/transport-ops/gen/ent/tollpageresult"
	"github.com/fleetware/transport-ops/gen/ent/tollsstaging"
	"github.com/fleetware/transport-ops/gen/ent/transportationasset"
	"github.com/fleetware/transport-ops/gen/ent/trip"
	"github.com/fleetware/transport-ops/gen/ent/tripdrop"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	deliverynotecaptureFields := schema.DeliveryNoteCapture{}.Fields()
	_ = deliverynotecaptureFields
	// deliverynotecaptureDescFilePath is the schema descriptor for file_path field.
	deliverynotecaptureDescFilePath := deliverynotecaptureFields[2].Descriptor()
	// deliverynotecapture.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	deliverynotecapture.FilePathValidator = deliverynotecaptureDescFilePath.Validators[0].(func(string) error)
	// deliverynotecaptureDescStatus is the schema descriptor for status field.
	deliverynotecaptureDescStatus := deliverynotecaptureFields[6].Descriptor()
	// deliverynotecapture.DefaultStatus holds the default value on creation for the status field.
	deliverynotecapture.DefaultStatus = deliverynotecaptureDescStatus.Default.(string)
	// deliverynotecapture.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	deliverynotecapture.StatusValidator = deliverynotecaptureDescStatus.Validators[0].(func(string) error)
	// deliverynotecaptureDescCreatedAt is the schema descriptor for created_at field.
	deliverynotecaptureDescCreatedAt := deliverynotecaptureFields[8].Descriptor()
	// deliverynotecapture.DefaultCreatedAt holds the default value on creation for the created_at field.
	deliverynotecapture.DefaultCreatedAt = deliverynotecaptureDescCreatedAt.Default.(func() time.Time)
	// deliverynotecaptureDescUpdatedAt is the schema descriptor for updated_at field.
	deliverynotecaptureDescUpdatedAt := deliverynotecaptureFields[9].Descriptor()
	// deliverynotecapture.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deliverynotecapture.DefaultUpdatedAt = deliverynotecaptureDescUpdatedAt.Default.(func() time.Time)
	// deliverynotecapture.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	deliverynotecapture.UpdateDefaultUpdatedAt = deliverynotecaptureDescUpdatedAt.UpdateDefault.(func() time.Time)
	// deliverynotecaptureDescID is the schema descriptor for id field.
	deliverynotecaptureDescID := deliverynotecaptureFields[0].Descriptor()
	// deliverynotecapture.DefaultID holds the default value on creation for the id field.
	deliverynotecapture.DefaultID = deliverynotecaptureDescID.Default.(func() uuid.UUID)
	ocrsettingFields := schema.OCRSetting{}.Fields()
	_ = ocrsettingFields
	// ocrsettingDescFunction is the schema descriptor for function field.
	ocrsettingDescFunction := ocrsettingFields[1].Descriptor()
	// ocrsetting.FunctionValidator is a validator for the "function" field. It is called by the builders before save.
	ocrsetting.FunctionValidator = func() func(string) error {
		validators := ocrsettingDescFunction.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(function string) error {
			for _, fn := range fns {
				if err := fn(function); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ocrsettingDescPromptTemplate is the schema descriptor for prompt_template field.
	ocrsettingDescPromptTemplate := ocrsettingFields[2].Descriptor()
	// ocrsetting.PromptTemplateValidator is a validator for the "prompt_template" field. It is called by the builders before save.
	ocrsetting.PromptTemplateValidator = ocrsettingDescPromptTemplate.Validators[0].(func(string) error)
	// ocrsettingDescJSONExample is the schema descriptor for json_example field.
	ocrsettingDescJSONExample := ocrsettingFields[3].Descriptor()
	// ocrsetting.JSONExampleValidator is a validator for the "json_example" field. It is called by the builders before save.
	ocrsetting.JSONExampleValidator = ocrsettingDescJSONExample.Validators[0].(func(string) error)
	// ocrsettingDescUpdatedAt is the schema descriptor for updated_at field.
	ocrsettingDescUpdatedAt := ocrsettingFields[4].Descriptor()
	// ocrsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ocrsetting.DefaultUpdatedAt = ocrsettingDescUpdatedAt.Default.(func() time.Time)
	// ocrsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ocrsetting.UpdateDefaultUpdatedAt = ocrsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ocrsettingDescID is the schema descriptor for id field.
	ocrsettingDescID := ocrsettingFields[0].Descriptor()
	// ocrsetting.DefaultID holds the default value on creation for the id field.
	ocrsetting.DefaultID = ocrsettingDescID.Default.(func() uuid.UUID)
	tollFields := schema.Toll{}.Fields()
	_ = tollFields
	// tollDescEtagID is the schema descriptor for etag_id field.
	tollDescEtagID := tollFields[3].Descriptor()
	// toll.EtagIDValidator is a validator for the "etag_id" field. It is called by the builders before save.
	toll.EtagIDValidator = tollDescEtagID.Validators[0].(func(string) error)
	// tollDescProcessStatus is the schema descriptor for process_status field.
	tollDescProcessStatus := tollFields[9].Descriptor()
	// toll.DefaultProcessStatus holds the default value on creation for the process_status field.
	toll.DefaultProcessStatus = tollDescProcessStatus.Default.(string)
	// tollDescCreatedAt is the schema descriptor for created_at field.
	tollDescCreatedAt := tollFields[11].Descriptor()
	// toll.DefaultCreatedAt holds the default value on creation for the created_at field.
	toll.DefaultCreatedAt = tollDescCreatedAt.Default.(func() time.Time)
	// tollDescID is the schema descriptor for id field.
	tollDescID := tollFields[0].Descriptor()
	// toll.DefaultID holds the default value on creation for the id field.
	toll.DefaultID = tollDescID.Default.(func() uuid.UUID)
	tollcaptureFields := schema.TollCapture{}.Fields()
	_ = tollcaptureFields
	// tollcaptureDescFilePath is the schema descriptor for file_path field.
	tollcaptureDescFilePath := tollcaptureFields[3].Descriptor()
	// tollcapture.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	tollcapture.FilePathValidator = tollcaptureDescFilePath.Validators[0].(func(string) error)
	// tollcaptureDescTotalRecords is the schema descriptor for total_records field.
	tollcaptureDescTotalRecords := tollcaptureFields[4].Descriptor()
	// tollcapture.DefaultTotalRecords holds the default value on creation for the total_records field.
	tollcapture.DefaultTotalRecords = tollcaptureDescTotalRecords.Default.(int)
	// tollcapture.TotalRecordsValidator is a validator for the "total_records" field. It is called by the builders before save.
	tollcapture.TotalRecordsValidator = tollcaptureDescTotalRecords.Validators[0].(func(int) error)
	// tollcaptureDescProgressCount is the schema descriptor for progress_count field.
	tollcaptureDescProgressCount := tollcaptureFields[5].Descriptor()
	// tollcapture.DefaultProgressCount holds the default value on creation for the progress_count field.
	tollcapture.DefaultProgressCount = tollcaptureDescProgressCount.Default.(string)
	// tollcaptureDescStatus is the schema descriptor for status field.
	tollcaptureDescStatus := tollcaptureFields[7].Descriptor()
	// tollcapture.DefaultStatus holds the default value on creation for the status field.
	tollcapture.DefaultStatus = tollcaptureDescStatus.Default.(string)
	// tollcapture.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	tollcapture.StatusValidator = tollcaptureDescStatus.Validators[0].(func(string) error)
	// tollcaptureDescCreatedAt is the schema descriptor for created_at field.
	tollcaptureDescCreatedAt := tollcaptureFields[9].Descriptor()
	// tollcapture.DefaultCreatedAt holds the default value on creation for the created_at field.
	tollcapture.DefaultCreatedAt = tollcaptureDescCreatedAt.Default.(func() time.Time)
	// tollcaptureDescUpdatedAt is the schema descriptor for updated_at field.
	tollcaptureDescUpdatedAt := tollcaptureFields[10].Descriptor()
	// tollcapture.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tollcapture.DefaultUpdatedAt = tollcaptureDescUpdatedAt.Default.(func() time.Time)
	// tollcapture.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tollcapture.UpdateDefaultUpdatedAt = tollcaptureDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tollcaptureDescID is the schema descriptor for id field.
	tollcaptureDescID := tollcaptureFields[0].Descriptor()
	// tollcapture.DefaultID holds the default value on creation for the id field.
	tollcapture.DefaultID = tollcaptureDescID.Default.(func() uuid.UUID)
	tollpageresultFields := schema.TollPageResult{}.Fields()
	_ = tollpageresultFields
	// tollpageresultDescPageNumber is the schema descriptor for page_number field.
	tollpageresultDescPageNumber := tollpageresultFields[2].Descriptor()
	// tollpageresult.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	tollpageresult.PageNumberValidator = tollpageresultDescPageNumber.Validators[0].(func(int) error)
	// tollpageresultDescStatus is the schema descriptor for status field.
	tollpageresultDescStatus := tollpageresultFields[4].Descriptor()
	// tollpageresult.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	tollpageresult.StatusValidator = tollpageresultDescStatus.Validators[0].(func(string) error)
	// tollpageresultDescCreatedAt is the schema descriptor for created_at field.
	tollpageresultDescCreatedAt := tollpageresultFields[6].Descriptor()
	// tollpageresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	tollpageresult.DefaultCreatedAt = tollpageresultDescCreatedAt.Default.(func() time.Time)
	// tollpageresultDescID is the schema descriptor for id field.
	tollpageresultDescID := tollpageresultFields[0].Descriptor()
	// tollpageresult.DefaultID holds the default value on creation for the id field.
	tollpageresult.DefaultID = tollpageresultDescID.Default.(func() uuid.UUID)
	tollsstagingFields := schema.TollsStaging{}.Fields()
	_ = tollsstagingFields
	// tollsstagingDescStatus is the schema descriptor for status field.
	tollsstagingDescStatus := tollsstagingFields[4].Descriptor()
	// tollsstaging.DefaultStatus holds the default value on creation for the status field.
	tollsstaging.DefaultStatus = tollsstagingDescStatus.Default.(string)
	// tollsstaging.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	tollsstaging.StatusValidator = tollsstagingDescStatus.Validators[0].(func(string) error)
	// tollsstagingDescCreatedAt is the schema descriptor for created_at field.
	tollsstagingDescCreatedAt := tollsstagingFields[6].Descriptor()
	// tollsstaging.DefaultCreatedAt holds the default value on creation for the created_at field.
	tollsstaging.DefaultCreatedAt = tollsstagingDescCreatedAt.Default.(func() time.Time)
	// tollsstagingDescUpdatedAt is the schema descriptor for updated_at field.
	tollsstagingDescUpdatedAt := tollsstagingFields[7].Descriptor()
	// tollsstaging.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tollsstaging.DefaultUpdatedAt = tollsstagingDescUpdatedAt.Default.(func() time.Time)
	// tollsstaging.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tollsstaging.UpdateDefaultUpdatedAt = tollsstagingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tollsstagingDescID is the schema descriptor for id field.
	tollsstagingDescID := tollsstagingFields[0].Descriptor()
	// tollsstaging.DefaultID holds the default value on creation for the id field.
	tollsstaging.DefaultID = tollsstagingDescID.Default.(func() uuid.UUID)
	transportationassetFields := schema.TransportationAsset{}.Fields()
	_ = transportationassetFields
	// transportationassetDescTruckNumber is the schema descriptor for truck_number field.
	transportationassetDescTruckNumber := transportationassetFields[1].Descriptor()
	// transportationasset.TruckNumberValidator is a validator for the "truck_number" field. It is called by the builders before save.
	transportationasset.TruckNumberValidator = transportationassetDescTruckNumber.Validators[0].(func(string) error)
	// transportationassetDescActive is the schema descriptor for active field.
	transportationassetDescActive := transportationassetFields[3].Descriptor()
	// transportationasset.DefaultActive holds the default value on creation for the active field.
	transportationasset.DefaultActive = transportationassetDescActive.Default.(bool)
	// transportationassetDescCreatedAt is the schema descriptor for created_at field.
	transportationassetDescCreatedAt := transportationassetFields[4].Descriptor()
	// transportationasset.DefaultCreatedAt holds the default value on creation for the created_at field.
	transportationasset.DefaultCreatedAt = transportationassetDescCreatedAt.Default.(func() time.Time)
	// transportationassetDescID is the schema descriptor for id field.
	transportationassetDescID := transportationassetFields[0].Descriptor()
	// transportationasset.DefaultID holds the default value on creation for the id field.
	transportationasset.DefaultID = transportationassetDescID.Default.(func() uuid.UUID)
	tripFields := schema.Trip{}.Fields()
	_ = tripFields
	// tripDescStatus is the schema descriptor for status field.
	tripDescStatus := tripFields[10].Descriptor()
	// trip.DefaultStatus holds the default value on creation for the status field.
	trip.DefaultStatus = tripDescStatus.Default.(string)
	// trip.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	trip.StatusValidator = tripDescStatus.Validators[0].(func(string) error)
	// tripDescCreatedAt is the schema descriptor for created_at field.
	tripDescCreatedAt := tripFields[11].Descriptor()
	// trip.DefaultCreatedAt holds the default value on creation for the created_at field.
	trip.DefaultCreatedAt = tripDescCreatedAt.Default.(func() time.Time)
	// tripDescUpdatedAt is the schema descriptor for updated_at field.
	tripDescUpdatedAt := tripFields[12].Descriptor()
	// trip.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	trip.DefaultUpdatedAt = tripDescUpdatedAt.Default.(func() time.Time)
	// trip.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	trip.UpdateDefaultUpdatedAt = tripDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tripDescID is the schema descriptor for id field.
	tripDescID := tripFields[0].Descriptor()
	// trip.DefaultID holds the default value on creation for the id field.
	trip.DefaultID = tripDescID.Default.(func() uuid.UUID)
	tripdropFields := schema.TripDrop{}.Fields()
	_ = tripdropFields
	// tripdropDescSeq is the schema descriptor for seq field.
	tripdropDescSeq := tripdropFields[2].Descriptor()
	// tripdrop.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	tripdrop.SeqValidator = tripdropDescSeq.Validators[0].(func(int) error)
	// tripdropDescID is the schema descriptor for id field.
	tripdropDescID := tripdropFields[0].Descriptor()
	// tripdrop.DefaultID holds the default value on creation for the id field.
	tripdrop.DefaultID = tripdropDescID.Default.(func() uuid.UUID)
}
