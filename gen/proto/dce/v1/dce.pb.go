// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: dce/v1/dce.proto

package dcev1

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

type ExportFormat int32

const (
	ExportFormat_EXPORT_FORMAT_UNSPECIFIED ExportFormat = 0
	ExportFormat_EXPORT_FORMAT_XLSX        ExportFormat = 1
	ExportFormat_EXPORT_FORMAT_JSON        ExportFormat = 2
)

// Enum value maps for ExportFormat.
var (
	ExportFormat_name = map[int32]string{
		0: "EXPORT_FORMAT_UNSPECIFIED",
		1: "EXPORT_FORMAT_XLSX",
		2: "EXPORT_FORMAT_JSON",
	}
	ExportFormat_value = map[string]int32{
		"EXPORT_FORMAT_UNSPECIFIED": 0,
		"EXPORT_FORMAT_XLSX":        1,
		"EXPORT_FORMAT_JSON":        2,
	}
)

func (x ExportFormat) Enum() *ExportFormat {
	p := new(ExportFormat)
	*p = x
	return p
}

func (x ExportFormat) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ExportFormat) Descriptor() protoreflect.EnumDescriptor {
	return file_dce_v1_dce_proto_enumTypes[0].Descriptor()
}

func (ExportFormat) Type() protoreflect.EnumType {
	return &file_dce_v1_dce_proto_enumTypes[0]
}

func (x ExportFormat) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ExportFormat.Descriptor instead.
func (ExportFormat) EnumDescriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{0}
}

type AnalyzeDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDocumentRequest) Reset() {
	*x = AnalyzeDocumentRequest{}
	mi := &file_dce_v1_dce_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDocumentRequest) ProtoMessage() {}

func (x *AnalyzeDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDocumentRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeDocumentRequest) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{0}
}

func (x *AnalyzeDocumentRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *AnalyzeDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *AnalyzeDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type AnalyzeDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Analysis      *Analysis              `protobuf:"bytes,1,opt,name=analysis,proto3" json:"analysis,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDocumentResponse) Reset() {
	*x = AnalyzeDocumentResponse{}
	mi := &file_dce_v1_dce_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDocumentResponse) ProtoMessage() {}

func (x *AnalyzeDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDocumentResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeDocumentResponse) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{1}
}

func (x *AnalyzeDocumentResponse) GetAnalysis() *Analysis {
	if x != nil {
		return x.Analysis
	}
	return nil
}

type GetAnalysisRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	AnalysisId    string                 `protobuf:"bytes,2,opt,name=analysis_id,json=analysisId,proto3" json:"analysis_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnalysisRequest) Reset() {
	*x = GetAnalysisRequest{}
	mi := &file_dce_v1_dce_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisRequest) ProtoMessage() {}

func (x *GetAnalysisRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisRequest.ProtoReflect.Descriptor instead.
func (*GetAnalysisRequest) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{2}
}

func (x *GetAnalysisRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *GetAnalysisRequest) GetAnalysisId() string {
	if x != nil {
		return x.AnalysisId
	}
	return ""
}

type GetAnalysisResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Analysis      *Analysis              `protobuf:"bytes,1,opt,name=analysis,proto3" json:"analysis,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnalysisResponse) Reset() {
	*x = GetAnalysisResponse{}
	mi := &file_dce_v1_dce_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisResponse) ProtoMessage() {}

func (x *GetAnalysisResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisResponse.ProtoReflect.Descriptor instead.
func (*GetAnalysisResponse) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{3}
}

func (x *GetAnalysisResponse) GetAnalysis() *Analysis {
	if x != nil {
		return x.Analysis
	}
	return nil
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	AnalysisId    string                 `protobuf:"bytes,2,opt,name=analysis_id,json=analysisId,proto3" json:"analysis_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_dce_v1_dce_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobStatusRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *GetJobStatusRequest) GetAnalysisId() string {
	if x != nil {
		return x.AnalysisId
	}
	return ""
}

type GetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`      // PENDING | PARTIAL | COMPLETE | FAILED
	Progress      int32                  `protobuf:"varint,2,opt,name=progress,proto3" json:"progress,omitempty"` // 0..100
	CurrentStep   string                 `protobuf:"bytes,3,opt,name=current_step,json=currentStep,proto3" json:"current_step,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,4,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_dce_v1_dce_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*GetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{5}
}

func (x *GetJobStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetJobStatusResponse) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *GetJobStatusResponse) GetCurrentStep() string {
	if x != nil {
		return x.CurrentStep
	}
	return ""
}

func (x *GetJobStatusResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type ListAnalysesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAnalysesRequest) Reset() {
	*x = ListAnalysesRequest{}
	mi := &file_dce_v1_dce_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAnalysesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAnalysesRequest) ProtoMessage() {}

func (x *ListAnalysesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAnalysesRequest.ProtoReflect.Descriptor instead.
func (*ListAnalysesRequest) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{6}
}

func (x *ListAnalysesRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ListAnalysesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListAnalysesRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListAnalysesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Analyses      []*Analysis            `protobuf:"bytes,1,rep,name=analyses,proto3" json:"analyses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAnalysesResponse) Reset() {
	*x = ListAnalysesResponse{}
	mi := &file_dce_v1_dce_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAnalysesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAnalysesResponse) ProtoMessage() {}

func (x *ListAnalysesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAnalysesResponse.ProtoReflect.Descriptor instead.
func (*ListAnalysesResponse) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{7}
}

func (x *ListAnalysesResponse) GetAnalyses() []*Analysis {
	if x != nil {
		return x.Analyses
	}
	return nil
}

type DeleteAnalysisRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	AnalysisId    string                 `protobuf:"bytes,2,opt,name=analysis_id,json=analysisId,proto3" json:"analysis_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteAnalysisRequest) Reset() {
	*x = DeleteAnalysisRequest{}
	mi := &file_dce_v1_dce_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteAnalysisRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteAnalysisRequest) ProtoMessage() {}

func (x *DeleteAnalysisRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteAnalysisRequest.ProtoReflect.Descriptor instead.
func (*DeleteAnalysisRequest) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{8}
}

func (x *DeleteAnalysisRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *DeleteAnalysisRequest) GetAnalysisId() string {
	if x != nil {
		return x.AnalysisId
	}
	return ""
}

type DeleteAnalysisResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteAnalysisResponse) Reset() {
	*x = DeleteAnalysisResponse{}
	mi := &file_dce_v1_dce_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteAnalysisResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteAnalysisResponse) ProtoMessage() {}

func (x *DeleteAnalysisResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteAnalysisResponse.ProtoReflect.Descriptor instead.
func (*DeleteAnalysisResponse) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{9}
}

type ExportAnalysisRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	AnalysisId    string                 `protobuf:"bytes,2,opt,name=analysis_id,json=analysisId,proto3" json:"analysis_id,omitempty"`
	Format        ExportFormat           `protobuf:"varint,3,opt,name=format,proto3,enum=dce.v1.ExportFormat" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAnalysisRequest) Reset() {
	*x = ExportAnalysisRequest{}
	mi := &file_dce_v1_dce_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAnalysisRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAnalysisRequest) ProtoMessage() {}

func (x *ExportAnalysisRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAnalysisRequest.ProtoReflect.Descriptor instead.
func (*ExportAnalysisRequest) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{10}
}

func (x *ExportAnalysisRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ExportAnalysisRequest) GetAnalysisId() string {
	if x != nil {
		return x.AnalysisId
	}
	return ""
}

func (x *ExportAnalysisRequest) GetFormat() ExportFormat {
	if x != nil {
		return x.Format
	}
	return ExportFormat_EXPORT_FORMAT_UNSPECIFIED
}

type ExportAnalysisResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAnalysisResponse) Reset() {
	*x = ExportAnalysisResponse{}
	mi := &file_dce_v1_dce_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAnalysisResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAnalysisResponse) ProtoMessage() {}

func (x *ExportAnalysisResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAnalysisResponse.ProtoReflect.Descriptor instead.
func (*ExportAnalysisResponse) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{11}
}

func (x *ExportAnalysisResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExportAnalysisResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportAnalysisResponse) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

type Finding struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lot           string                 `protobuf:"bytes,1,opt,name=lot,proto3" json:"lot,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Content       string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	Confidence    float32                `protobuf:"fixed32,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Section       string                 `protobuf:"bytes,5,opt,name=section,proto3" json:"section,omitempty"`
	ChunkIndex    int32                  `protobuf:"varint,6,opt,name=chunk_index,json=chunkIndex,proto3" json:"chunk_index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Finding) Reset() {
	*x = Finding{}
	mi := &file_dce_v1_dce_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Finding) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Finding) ProtoMessage() {}

func (x *Finding) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Finding.ProtoReflect.Descriptor instead.
func (*Finding) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{12}
}

func (x *Finding) GetLot() string {
	if x != nil {
		return x.Lot
	}
	return ""
}

func (x *Finding) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Finding) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Finding) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Finding) GetSection() string {
	if x != nil {
		return x.Section
	}
	return ""
}

func (x *Finding) GetChunkIndex() int32 {
	if x != nil {
		return x.ChunkIndex
	}
	return 0
}

type GeneralInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectName   string                 `protobuf:"bytes,1,opt,name=project_name,json=projectName,proto3" json:"project_name,omitempty"`
	ClientName    string                 `protobuf:"bytes,2,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	BudgetHt      string                 `protobuf:"bytes,3,opt,name=budget_ht,json=budgetHt,proto3" json:"budget_ht,omitempty"` // decimal string, euros excl. VAT
	Deadline      string                 `protobuf:"bytes,4,opt,name=deadline,proto3" json:"deadline,omitempty"`                 // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GeneralInfo) Reset() {
	*x = GeneralInfo{}
	mi := &file_dce_v1_dce_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GeneralInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GeneralInfo) ProtoMessage() {}

func (x *GeneralInfo) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GeneralInfo.ProtoReflect.Descriptor instead.
func (*GeneralInfo) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{13}
}

func (x *GeneralInfo) GetProjectName() string {
	if x != nil {
		return x.ProjectName
	}
	return ""
}

func (x *GeneralInfo) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *GeneralInfo) GetBudgetHt() string {
	if x != nil {
		return x.BudgetHt
	}
	return ""
}

func (x *GeneralInfo) GetDeadline() string {
	if x != nil {
		return x.Deadline
	}
	return ""
}

type Analysis struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AccountId          string                 `protobuf:"bytes,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	DocumentId         string                 `protobuf:"bytes,3,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Status             string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Findings           []*Finding             `protobuf:"bytes,5,rep,name=findings,proto3" json:"findings,omitempty"`
	Summary            string                 `protobuf:"bytes,6,opt,name=summary,proto3" json:"summary,omitempty"`
	General            *GeneralInfo           `protobuf:"bytes,7,opt,name=general,proto3" json:"general,omitempty"`
	UnanalyzedSections []string               `protobuf:"bytes,8,rep,name=unanalyzed_sections,json=unanalyzedSections,proto3" json:"unanalyzed_sections,omitempty"`
	Progress           int32                  `protobuf:"varint,9,opt,name=progress,proto3" json:"progress,omitempty"`
	CurrentStep        string                 `protobuf:"bytes,10,opt,name=current_step,json=currentStep,proto3" json:"current_step,omitempty"`
	ErrorMessage       string                 `protobuf:"bytes,11,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`       // RFC 3339
	CompletedAt        string                 `protobuf:"bytes,13,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"` // RFC 3339, empty while pending
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Analysis) Reset() {
	*x = Analysis{}
	mi := &file_dce_v1_dce_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Analysis) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Analysis) ProtoMessage() {}

func (x *Analysis) ProtoReflect() protoreflect.Message {
	mi := &file_dce_v1_dce_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Analysis.ProtoReflect.Descriptor instead.
func (*Analysis) Descriptor() ([]byte, []int) {
	return file_dce_v1_dce_proto_rawDescGZIP(), []int{14}
}

func (x *Analysis) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Analysis) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *Analysis) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Analysis) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Analysis) GetFindings() []*Finding {
	if x != nil {
		return x.Findings
	}
	return nil
}

func (x *Analysis) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *Analysis) GetGeneral() *GeneralInfo {
	if x != nil {
		return x.General
	}
	return nil
}

func (x *Analysis) GetUnanalyzedSections() []string {
	if x != nil {
		return x.UnanalyzedSections
	}
	return nil
}

func (x *Analysis) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *Analysis) GetCurrentStep() string {
	if x != nil {
		return x.CurrentStep
	}
	return ""
}

func (x *Analysis) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Analysis) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Analysis) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

var File_dce_v1_dce_proto protoreflect.FileDescriptor

const file_dce_v1_dce_proto_rawDesc = "" +
	"\n" +
	"\x10dce/v1/dce.proto\x12\x06dce.v1\"m\n" +
	"\x16AnalyzeDocumentRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"G\n" +
	"\x17AnalyzeDocumentResponse\x12,\n" +
	"\banalysis\x18\x01 \x01(\v2\x10.dce.v1.AnalysisR\banalysis\"T\n" +
	"\x12GetAnalysisRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x1f\n" +
	"\vanalysis_id\x18\x02 \x01(\tR\n" +
	"analysisId\"C\n" +
	"\x13GetAnalysisResponse\x12,\n" +
	"\banalysis\x18\x01 \x01(\v2\x10.dce.v1.AnalysisR\banalysis\"U\n" +
	"\x13GetJobStatusRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x1f\n" +
	"\vanalysis_id\x18\x02 \x01(\tR\n" +
	"analysisId\"\x92\x01\n" +
	"\x14GetJobStatusResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1a\n" +
	"\bprogress\x18\x02 \x01(\x05R\bprogress\x12!\n" +
	"\fcurrent_step\x18\x03 \x01(\tR\vcurrentStep\x12#\n" +
	"\rerror_message\x18\x04 \x01(\tR\ferrorMessage\"b\n" +
	"\x13ListAnalysesRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"D\n" +
	"\x14ListAnalysesResponse\x12,\n" +
	"\banalyses\x18\x01 \x03(\v2\x10.dce.v1.AnalysisR\banalyses\"W\n" +
	"\x15DeleteAnalysisRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x1f\n" +
	"\vanalysis_id\x18\x02 \x01(\tR\n" +
	"analysisId\"\x18\n" +
	"\x16DeleteAnalysisResponse\"\x85\x01\n" +
	"\x15ExportAnalysisRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x1f\n" +
	"\vanalysis_id\x18\x02 \x01(\tR\n" +
	"analysisId\x12,\n" +
	"\x06format\x18\x03 \x01(\x0e2\x14.dce.v1.ExportFormatR\x06format\"q\n" +
	"\x16ExportAnalysisResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\"\xa6\x01\n" +
	"\aFinding\x12\x10\n" +
	"\x03lot\x18\x01 \x01(\tR\x03lot\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x18\n" +
	"\acontent\x18\x03 \x01(\tR\acontent\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x02R\n" +
	"confidence\x12\x18\n" +
	"\asection\x18\x05 \x01(\tR\asection\x12\x1f\n" +
	"\vchunk_index\x18\x06 \x01(\x05R\n" +
	"chunkIndex\"\x8a\x01\n" +
	"\vGeneralInfo\x12!\n" +
	"\fproject_name\x18\x01 \x01(\tR\vprojectName\x12\x1f\n" +
	"\vclient_name\x18\x02 \x01(\tR\n" +
	"clientName\x12\x1b\n" +
	"\tbudget_ht\x18\x03 \x01(\tR\bbudgetHt\x12\x1a\n" +
	"\bdeadline\x18\x04 \x01(\tR\bdeadline\"\xbf\x03\n" +
	"\bAnalysis\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"account_id\x18\x02 \x01(\tR\taccountId\x12\x1f\n" +
	"\vdocument_id\x18\x03 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12+\n" +
	"\bfindings\x18\x05 \x03(\v2\x0f.dce.v1.FindingR\bfindings\x12\x18\n" +
	"\asummary\x18\x06 \x01(\tR\asummary\x12-\n" +
	"\ageneral\x18\a \x01(\v2\x13.dce.v1.GeneralInfoR\ageneral\x12/\n" +
	"\x13unanalyzed_sections\x18\b \x03(\tR\x12unanalyzedSections\x12\x1a\n" +
	"\bprogress\x18\t \x01(\x05R\bprogress\x12!\n" +
	"\fcurrent_step\x18\n" +
	" \x01(\tR\vcurrentStep\x12#\n" +
	"\rerror_message\x18\v \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12!\n" +
	"\fcompleted_at\x18\r \x01(\tR\vcompletedAt*]\n" +
	"\fExportFormat\x12\x1d\n" +
	"\x19EXPORT_FORMAT_UNSPECIFIED\x10\x00\x12\x16\n" +
	"\x12EXPORT_FORMAT_XLSX\x10\x01\x12\x16\n" +
	"\x12EXPORT_FORMAT_JSON\x10\x022\x94\x03\n" +
	"\x0fAnalysisService\x12R\n" +
	"\x0fAnalyzeDocument\x12\x1e.dce.v1.AnalyzeDocumentRequest\x1a\x1f.dce.v1.AnalyzeDocumentResponse\x12F\n" +
	"\vGetAnalysis\x12\x1a.dce.v1.GetAnalysisRequest\x1a\x1b.dce.v1.GetAnalysisResponse\x12I\n" +
	"\fGetJobStatus\x12\x1b.dce.v1.GetJobStatusRequest\x1a\x1c.dce.v1.GetJobStatusResponse\x12I\n" +
	"\fListAnalyses\x12\x1b.dce.v1.ListAnalysesRequest\x1a\x1c.dce.v1.ListAnalysesResponse\x12O\n" +
	"\x0eDeleteAnalysis\x12\x1d.dce.v1.DeleteAnalysisRequest\x1a\x1e.dce.v1.DeleteAnalysisResponse2`\n" +
	"\rExportService\x12O\n" +
	"\x0eExportAnalysis\x12\x1d.dce.v1.ExportAnalysisRequest\x1a\x1e.dce.v1.ExportAnalysisResponseB:Z8github.com/bidkiller/dce-analyzer/gen/proto/dce/v1;dcev1b\x06proto3"

var (
	file_dce_v1_dce_proto_rawDescOnce sync.Once
	file_dce_v1_dce_proto_rawDescData []byte
)

func file_dce_v1_dce_proto_rawDescGZIP() []byte {
	file_dce_v1_dce_proto_rawDescOnce.Do(func() {
		file_dce_v1_dce_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_dce_v1_dce_proto_rawDesc), len(file_dce_v1_dce_proto_rawDesc)))
	})
	return file_dce_v1_dce_proto_rawDescData
}

var file_dce_v1_dce_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_dce_v1_dce_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_dce_v1_dce_proto_goTypes = []any{
	(ExportFormat)(0),               // 0: dce.v1.ExportFormat
	(*AnalyzeDocumentRequest)(nil),  // 1: dce.v1.AnalyzeDocumentRequest
	(*AnalyzeDocumentResponse)(nil), // 2: dce.v1.AnalyzeDocumentResponse
	(*GetAnalysisRequest)(nil),      // 3: dce.v1.GetAnalysisRequest
	(*GetAnalysisResponse)(nil),     // 4: dce.v1.GetAnalysisResponse
	(*GetJobStatusRequest)(nil),     // 5: dce.v1.GetJobStatusRequest
	(*GetJobStatusResponse)(nil),    // 6: dce.v1.GetJobStatusResponse
	(*ListAnalysesRequest)(nil),     // 7: dce.v1.ListAnalysesRequest
	(*ListAnalysesResponse)(nil),    // 8: dce.v1.ListAnalysesResponse
	(*DeleteAnalysisRequest)(nil),   // 9: dce.v1.DeleteAnalysisRequest
	(*DeleteAnalysisResponse)(nil),  // 10: dce.v1.DeleteAnalysisResponse
	(*ExportAnalysisRequest)(nil),   // 11: dce.v1.ExportAnalysisRequest
	(*ExportAnalysisResponse)(nil),  // 12: dce.v1.ExportAnalysisResponse
	(*Finding)(nil),                 // 13: dce.v1.Finding
	(*GeneralInfo)(nil),             // 14: dce.v1.GeneralInfo
	(*Analysis)(nil),                // 15: dce.v1.Analysis
}
var file_dce_v1_dce_proto_depIdxs = []int32{
	15, // 0: dce.v1.AnalyzeDocumentResponse.analysis:type_name -> dce.v1.Analysis
	15, // 1: dce.v1.GetAnalysisResponse.analysis:type_name -> dce.v1.Analysis
	15, // 2: dce.v1.ListAnalysesResponse.analyses:type_name -> dce.v1.Analysis
	0,  // 3: dce.v1.ExportAnalysisRequest.format:type_name -> dce.v1.ExportFormat
	13, // 4: dce.v1.Analysis.findings:type_name -> dce.v1.Finding
	14, // 5: dce.v1.Analysis.general:type_name -> dce.v1.GeneralInfo
	1,  // 6: dce.v1.AnalysisService.AnalyzeDocument:input_type -> dce.v1.AnalyzeDocumentRequest
	3,  // 7: dce.v1.AnalysisService.GetAnalysis:input_type -> dce.v1.GetAnalysisRequest
	5,  // 8: dce.v1.AnalysisService.GetJobStatus:input_type -> dce.v1.GetJobStatusRequest
	7,  // 9: dce.v1.AnalysisService.ListAnalyses:input_type -> dce.v1.ListAnalysesRequest
	9,  // 10: dce.v1.AnalysisService.DeleteAnalysis:input_type -> dce.v1.DeleteAnalysisRequest
	11, // 11: dce.v1.ExportService.ExportAnalysis:input_type -> dce.v1.ExportAnalysisRequest
	2,  // 12: dce.v1.AnalysisService.AnalyzeDocument:output_type -> dce.v1.AnalyzeDocumentResponse
	4,  // 13: dce.v1.AnalysisService.GetAnalysis:output_type -> dce.v1.GetAnalysisResponse
	6,  // 14: dce.v1.AnalysisService.GetJobStatus:output_type -> dce.v1.GetJobStatusResponse
	8,  // 15: dce.v1.AnalysisService.ListAnalyses:output_type -> dce.v1.ListAnalysesResponse
	10, // 16: dce.v1.AnalysisService.DeleteAnalysis:output_type -> dce.v1.DeleteAnalysisResponse
	12, // 17: dce.v1.ExportService.ExportAnalysis:output_type -> dce.v1.ExportAnalysisResponse
	12, // [12:18] is the sub-list for method output_type
	6,  // [6:12] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_dce_v1_dce_proto_init() }
func file_dce_v1_dce_proto_init() {
	if File_dce_v1_dce_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_dce_v1_dce_proto_rawDesc), len(file_dce_v1_dce_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_dce_v1_dce_proto_goTypes,
		DependencyIndexes: file_dce_v1_dce_proto_depIdxs,
		EnumInfos:         file_dce_v1_dce_proto_enumTypes,
		MessageInfos:      file_dce_v1_dce_proto_msgTypes,
	}.Build()
	File_dce_v1_dce_proto = out.File
	file_dce_v1_dce_proto_goTypes = nil
	file_dce_v1_dce_proto_depIdxs = nil
}
