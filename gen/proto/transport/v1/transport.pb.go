// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: transport/v1/transport.proto

package transportv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SubmitDeliveryNoteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DriverId      string                 `protobuf:"bytes,1,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	FilePath      string                 `protobuf:"bytes,2,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDeliveryNoteRequest) Reset() {
	*x = SubmitDeliveryNoteRequest{}
	mi := &file_transport_v1_transport_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDeliveryNoteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDeliveryNoteRequest) ProtoMessage() {}

func (x *SubmitDeliveryNoteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_transport_v1_transport_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDeliveryNoteRequest.ProtoReflect.Descriptor instead.
func (*SubmitDeliveryNoteRequest) Descriptor() ([]byte, []int) {
	return file_transport_v1_transport_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitDeliveryNoteRequest) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

func (x *SubmitDeliveryNoteRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

type SubmitDeliveryNoteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaptureId     string                 `protobuf:"bytes,1,opt,name=capture_id,json=captureId,proto3" json:"capture_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDeliveryNoteResponse) Reset() {
	*x = SubmitDeliveryNoteResponse{}
	mi := &file_transport_v1_transport_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDeliveryNoteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDeliveryNoteResponse) ProtoMessage() {}

func (x *SubmitDeliveryNoteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_transport_v1_transport_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDeliveryNoteResponse.ProtoReflect.Descriptor instead.
func (*SubmitDeliveryNoteResponse) Descriptor() ([]byte, []int) {
	return file_transport_v1_transport_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitDeliveryNoteResponse) GetCaptureId() string {
	if x != nil {
		return x.CaptureId
	}
	return ""
}

func (x *SubmitDeliveryNoteResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CreateTollCaptureRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DriverId      string                 `protobuf:"bytes,1,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	FilePath      string                 `protobuf:"bytes,2,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	AssetId       string                 `protobuf:"bytes,3,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTollCaptureRequest) Reset() {
	*x = CreateTollCaptureRequest{}
	mi := &file_transport_v1_transport_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTollCaptureRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTollCaptureRequest) ProtoMessage() {}

func (x *CreateTollCaptureRequest) ProtoReflect() protoreflect.Message {
	mi := &file_transport_v1_transport_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTollCaptureRequest.ProtoReflect.Descriptor instead.
func (*CreateTollCaptureRequest) Descriptor() ([]byte, []int) {
	return file_transport_v1_transport_proto_rawDescGZIP(), []int{2}
}

func (x *CreateTollCaptureRequest) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

func (x *CreateTollCaptureRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *CreateTollCaptureRequest) GetAssetId() string {
	if x != nil {
		return x.AssetId
	}
	return ""
}

type CreateTollCaptureResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaptureId     string                 `protobuf:"bytes,1,opt,name=capture_id,json=captureId,proto3" json:"capture_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTollCaptureResponse) Reset() {
	*x = CreateTollCaptureResponse{}
	mi := &file_transport_v1_transport_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTollCaptureResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTollCaptureResponse) ProtoMessage() {}

func (x *CreateTollCaptureResponse) ProtoReflect() protoreflect.Message {
	mi := &file_transport_v1_transport_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTollCaptureResponse.ProtoReflect.Descriptor instead.
func (*CreateTollCaptureResponse) Descriptor() ([]byte, []int) {
	return file_transport_v1_transport_proto_rawDescGZIP(), []int{3}
}

func (x *CreateTollCaptureResponse) GetCaptureId() string {
	if x != nil {
		return x.CaptureId
	}
	return ""
}

type ProcessTollDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaptureId     string                 `protobuf:"bytes,1,opt,name=capture_id,json=captureId,proto3" json:"capture_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessTollDocumentRequest) Reset() {
	*x = ProcessTollDocumentRequest{}
	mi := &file_transport_v1_transport_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessTollDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessTollDocumentRequest) ProtoMessage() {}

func (x *ProcessTollDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_transport_v1_transport_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessTollDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessTollDocumentRequest) Descriptor() ([]byte, []int) {
	return file_transport_v1_transport_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessTollDocumentRequest) GetCaptureId() string {
	if x != nil {
		return x.CaptureId
	}
	return ""
}

type ProcessTollDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	JobId         string                 `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessTollDocumentResponse) Reset() {
	*x = ProcessTollDocumentResponse{}
	mi := &file_transport_v1_transport_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessTollDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessTollDocumentResponse) ProtoMessage() {}

func (x *ProcessTollDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_transport_v1_transport_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessTollDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessTollDocumentResponse) Descriptor() ([]byte, []int) {
	return file_transport_v1_transport_proto_rawDescGZIP(), []int{5}
}

func (x *ProcessTollDocumentResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ProcessTollDocumentResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ProcessTollDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetCaptureStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaptureId     string                 `protobuf:"bytes,1,opt,name=capture_id,json=captureId,proto3" json:"capture_id,omitempty"`
	Kind          string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCaptureStatusRequest) Reset() {
	*x = GetCaptureStatusRequest{}
	mi := &file_transport_v1_transport_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCaptureStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCaptureStatusRequest) ProtoMessage() {}

func (x *GetCaptureStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_transport_v1_transport_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCaptureStatusRequest.ProtoReflect.Descriptor instead.
func (*GetCaptureStatusRequest) Descriptor() ([]byte, []int) {
	return file_transport_v1_transport_proto_rawDescGZIP(), []int{6}
}

func (x *GetCaptureStatusRequest) GetCaptureId() string {
	if x != nil {
		return x.CaptureId
	}
	return ""
}

func (x *GetCaptureStatusRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

type GetCaptureStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	TripId        string                 `protobuf:"bytes,3,opt,name=trip_id,json=tripId,proto3" json:"trip_id,omitempty"`
	TripStatus    string                 `protobuf:"bytes,4,opt,name=trip_status,json=tripStatus,proto3" json:"trip_status,omitempty"`
	TotalDistance int32                  `protobuf:"varint,5,opt,name=total_distance,json=totalDistance,proto3" json:"total_distance,omitempty"`
	ProgressCount string                 `protobuf:"bytes,6,opt,name=progress_count,json=progressCount,proto3" json:"progress_count,omitempty"`
	TotalRecords  int32                  `protobuf:"varint,7,opt,name=total_records,json=totalRecords,proto3" json:"total_records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCaptureStatusResponse) Reset() {
	*x = GetCaptureStatusResponse{}
	mi := &file_transport_v1_transport_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCaptureStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCaptureStatusResponse) ProtoMessage() {}

func (x *GetCaptureStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_transport_v1_transport_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCaptureStatusResponse.ProtoReflect.Descriptor instead.
func (*GetCaptureStatusResponse) Descriptor() ([]byte, []int) {
	return file_transport_v1_transport_proto_rawDescGZIP(), []int{7}
}

func (x *GetCaptureStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetCaptureStatusResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *GetCaptureStatusResponse) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *GetCaptureStatusResponse) GetTripStatus() string {
	if x != nil {
		return x.TripStatus
	}
	return ""
}

func (x *GetCaptureStatusResponse) GetTotalDistance() int32 {
	if x != nil {
		return x.TotalDistance
	}
	return 0
}

func (x *GetCaptureStatusResponse) GetProgressCount() string {
	if x != nil {
		return x.ProgressCount
	}
	return ""
}

func (x *GetCaptureStatusResponse) GetTotalRecords() int32 {
	if x != nil {
		return x.TotalRecords
	}
	return 0
}

type ExportTollsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTollsRequest) Reset() {
	*x = ExportTollsRequest{}
	mi := &file_transport_v1_transport_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTollsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTollsRequest) ProtoMessage() {}

func (x *ExportTollsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_transport_v1_transport_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTollsRequest.ProtoReflect.Descriptor instead.
func (*ExportTollsRequest) Descriptor() ([]byte, []int) {
	return file_transport_v1_transport_proto_rawDescGZIP(), []int{8}
}

func (x *ExportTollsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportTollsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportTollsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTollsResponse) Reset() {
	*x = ExportTollsResponse{}
	mi := &file_transport_v1_transport_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTollsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTollsResponse) ProtoMessage() {}

func (x *ExportTollsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_transport_v1_transport_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTollsResponse.ProtoReflect.Descriptor instead.
func (*ExportTollsResponse) Descriptor() ([]byte, []int) {
	return file_transport_v1_transport_proto_rawDescGZIP(), []int{9}
}

func (x *ExportTollsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_transport_v1_transport_proto protoreflect.FileDescriptor

const file_transport_v1_transport_proto_rawDesc = "" +
	"\n" +
	"\x1ctransport/v1/transport.proto\x12\ftransport.v1\"U\n" +
	"\x19SubmitDeliveryNoteRequest\x12\x1b\n" +
	"\tdriver_id\x18\x01 \x01(\tR\bdriverId\x12\x1b\n" +
	"\tfile_path\x18\x02 \x01(\tR\bfilePath\"R\n" +
	"\x1aSubmitDeliveryNoteResponse\x12\x1d\n" +
	"\n" +
	"capture_id\x18\x01 \x01(\tR\tcaptureId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\"o\n" +
	"\x18CreateTollCaptureRequest\x12\x1b\n" +
	"\tdriver_id\x18\x01 \x01(\tR\bdriverId\x12\x1b\n" +
	"\tfile_path\x18\x02 \x01(\tR\bfilePath\x12\x19\n" +
	"\basset_id\x18\x03 \x01(\tR\aassetId\":\n" +
	"\x19CreateTollCaptureResponse\x12\x1d\n" +
	"\n" +
	"capture_id\x18\x01 \x01(\tR\tcaptureId\";\n" +
	"\x1aProcessTollDocumentRequest\x12\x1d\n" +
	"\n" +
	"capture_id\x18\x01 \x01(\tR\tcaptureId\"h\n" +
	"\x1bProcessTollDocumentResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12\x15\n" +
	"\x06job_id\x18\x03 \x01(\tR\x05jobId\"L\n" +
	"\x17GetCaptureStatusRequest\x12\x1d\n" +
	"\n" +
	"capture_id\x18\x01 \x01(\tR\tcaptureId\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\"\x84\x02\n" +
	"\x18GetCaptureStatusResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\x02 \x01(\tR\ferrorMessage\x12\x17\n" +
	"\atrip_id\x18\x03 \x01(\tR\x06tripId\x12\x1f\n" +
	"\vtrip_status\x18\x04 \x01(\tR\n" +
	"tripStatus\x12%\n" +
	"\x0etotal_distance\x18\x05 \x01(\x05R\rtotalDistance\x12%\n" +
	"\x0eprogress_count\x18\x06 \x01(\tR\rprogressCount\x12#\n" +
	"\rtotal_records\x18\a \x01(\x05R\ftotalRecords\"J\n" +
	"\x12ExportTollsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\")\n" +
	"\x13ExportTollsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x84\x04\n" +
	"\x10TransportService\x12g\n" +
	"\x12SubmitDeliveryNote\x12'.transport.v1.SubmitDeliveryNoteRequest\x1a(.transport.v1.SubmitDeliveryNoteResponse\x12d\n" +
	"\x11CreateTollCapture\x12&.transport.v1.CreateTollCaptureRequest\x1a'.transport.v1.CreateTollCaptureResponse\x12j\n" +
	"\x13ProcessTollDocument\x12(.transport.v1.ProcessTollDocumentRequest\x1a).transport.v1.ProcessTollDocumentResponse\x12a\n" +
	"\x10GetCaptureStatus\x12%.transport.v1.GetCaptureStatusRequest\x1a&.transport.v1.GetCaptureStatusResponse\x12R\n" +
	"\vExportTolls\x12 .transport.v1.ExportTollsRequest\x1a!.transport.v1.ExportTollsResponseBGZEgithub.com/fleetware/transport-ops/gen/proto/transport/v1;transportv1b\x06proto3"

var (
	file_transport_v1_transport_proto_rawDescOnce sync.Once
	file_transport_v1_transport_proto_rawDescData []byte
)

func file_transport_v1_transport_proto_rawDescGZIP() []byte {
	file_transport_v1_transport_proto_rawDescOnce.Do(func() {
		file_transport_v1_transport_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_transport_v1_transport_proto_rawDesc), len(file_transport_v1_transport_proto_rawDesc)))
	})
	return file_transport_v1_transport_proto_rawDescData
}

var file_transport_v1_transport_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_transport_v1_transport_proto_goTypes = []any{
	(*SubmitDeliveryNoteRequest)(nil),   // 0: transport.v1.SubmitDeliveryNoteRequest
	(*SubmitDeliveryNoteResponse)(nil),  // 1: transport.v1.SubmitDeliveryNoteResponse
	(*CreateTollCaptureRequest)(nil),    // 2: transport.v1.CreateTollCaptureRequest
	(*CreateTollCaptureResponse)(nil),   // 3: transport.v1.CreateTollCaptureResponse
	(*ProcessTollDocumentRequest)(nil),  // 4: transport.v1.ProcessTollDocumentRequest
	(*ProcessTollDocumentResponse)(nil), // 5: transport.v1.ProcessTollDocumentResponse
	(*GetCaptureStatusRequest)(nil),     // 6: transport.v1.GetCaptureStatusRequest
	(*GetCaptureStatusResponse)(nil),    // 7: transport.v1.GetCaptureStatusResponse
	(*ExportTollsRequest)(nil),          // 8: transport.v1.ExportTollsRequest
	(*ExportTollsResponse)(nil),         // 9: transport.v1.ExportTollsResponse
}
var file_transport_v1_transport_proto_depIdxs = []int32{
	0, // 0: transport.v1.TransportService.SubmitDeliveryNote:input_type -> transport.v1.SubmitDeliveryNoteRequest
	2, // 1: transport.v1.TransportService.CreateTollCapture:input_type -> transport.v1.CreateTollCaptureRequest
	4, // 2: transport.v1.TransportService.ProcessTollDocument:input_type -> transport.v1.ProcessTollDocumentRequest
	6, // 3: transport.v1.TransportService.GetCaptureStatus:input_type -> transport.v1.GetCaptureStatusRequest
	8, // 4: transport.v1.TransportService.ExportTolls:input_type -> transport.v1.ExportTollsRequest
	1, // 5: transport.v1.TransportService.SubmitDeliveryNote:output_type -> transport.v1.SubmitDeliveryNoteResponse
	3, // 6: transport.v1.TransportService.CreateTollCapture:output_type -> transport.v1.CreateTollCaptureResponse
	5, // 7: transport.v1.TransportService.ProcessTollDocument:output_type -> transport.v1.ProcessTollDocumentResponse
	7, // 8: transport.v1.TransportService.GetCaptureStatus:output_type -> transport.v1.GetCaptureStatusResponse
	9, // 9: transport.v1.TransportService.ExportTolls:output_type -> transport.v1.ExportTollsResponse
	5, // [5:10] is the sub-list for method output_type
	0, // [0:5] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_transport_v1_transport_proto_init() }
func file_transport_v1_transport_proto_init() {
	if File_transport_v1_transport_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_transport_v1_transport_proto_rawDesc), len(file_transport_v1_transport_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_transport_v1_transport_proto_goTypes,
		DependencyIndexes: file_transport_v1_transport_proto_depIdxs,
		MessageInfos:      file_transport_v1_transport_proto_msgTypes,
	}.Build()
	File_transport_v1_transport_proto = out.File
	file_transport_v1_transport_proto_goTypes = nil
	file_transport_v1_transport_proto_depIdxs = nil
}
