// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: statline/v1/statline.proto

package statlinev1

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

type Processor struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	Id           string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name         string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DocumentType string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Version      int32                  `protobuf:"varint,4,opt,name=version,proto3" json:"version,omitempty"`
	LayoutHash   string                 `protobuf:"bytes,5,opt,name=layout_hash,json=layoutHash,proto3" json:"layout_hash,omitempty"`
	// RuleSet serialization; shape owned by the engine
	RulesJson     string `protobuf:"bytes,6,opt,name=rules_json,json=rulesJson,proto3" json:"rules_json,omitempty"`
	SuccessCount  int32  `protobuf:"varint,7,opt,name=success_count,json=successCount,proto3" json:"success_count,omitempty"`
	FailureCount  int32  `protobuf:"varint,8,opt,name=failure_count,json=failureCount,proto3" json:"failure_count,omitempty"`
	CreatedAt     string `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`  // RFC 3339
	UpdatedAt     string `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Processor) Reset() {
	*x = Processor{}
	mi := &file_statline_v1_statline_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Processor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Processor) ProtoMessage() {}

func (x *Processor) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Processor.ProtoReflect.Descriptor instead.
func (*Processor) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{0}
}

func (x *Processor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Processor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Processor) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Processor) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *Processor) GetLayoutHash() string {
	if x != nil {
		return x.LayoutHash
	}
	return ""
}

func (x *Processor) GetRulesJson() string {
	if x != nil {
		return x.RulesJson
	}
	return ""
}

func (x *Processor) GetSuccessCount() int32 {
	if x != nil {
		return x.SuccessCount
	}
	return 0
}

func (x *Processor) GetFailureCount() int32 {
	if x != nil {
		return x.FailureCount
	}
	return 0
}

func (x *Processor) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Processor) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Issue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Severity      string                 `protobuf:"bytes,2,opt,name=severity,proto3" json:"severity,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Field         string                 `protobuf:"bytes,4,opt,name=field,proto3" json:"field,omitempty"`
	Region        string                 `protobuf:"bytes,5,opt,name=region,proto3" json:"region,omitempty"`
	Anchor        string                 `protobuf:"bytes,6,opt,name=anchor,proto3" json:"anchor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Issue) Reset() {
	*x = Issue{}
	mi := &file_statline_v1_statline_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Issue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Issue) ProtoMessage() {}

func (x *Issue) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Issue.ProtoReflect.Descriptor instead.
func (*Issue) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{1}
}

func (x *Issue) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Issue) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *Issue) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Issue) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *Issue) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *Issue) GetAnchor() string {
	if x != nil {
		return x.Anchor
	}
	return ""
}

type LearnProcessorRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Filename          string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Document          []byte                 `protobuf:"bytes,2,opt,name=document,proto3" json:"document,omitempty"`
	DesiredOutputJson string                 `protobuf:"bytes,3,opt,name=desired_output_json,json=desiredOutputJson,proto3" json:"desired_output_json,omitempty"`
	DocumentType      string                 `protobuf:"bytes,4,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	ProcessorName     string                 `protobuf:"bytes,5,opt,name=processor_name,json=processorName,proto3" json:"processor_name,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *LearnProcessorRequest) Reset() {
	*x = LearnProcessorRequest{}
	mi := &file_statline_v1_statline_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LearnProcessorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LearnProcessorRequest) ProtoMessage() {}

func (x *LearnProcessorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LearnProcessorRequest.ProtoReflect.Descriptor instead.
func (*LearnProcessorRequest) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{2}
}

func (x *LearnProcessorRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *LearnProcessorRequest) GetDocument() []byte {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *LearnProcessorRequest) GetDesiredOutputJson() string {
	if x != nil {
		return x.DesiredOutputJson
	}
	return ""
}

func (x *LearnProcessorRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *LearnProcessorRequest) GetProcessorName() string {
	if x != nil {
		return x.ProcessorName
	}
	return ""
}

type LearnProcessorResponse struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Processor *Processor             `protobuf:"bytes,1,opt,name=processor,proto3" json:"processor,omitempty"`
	// self-check: how closely the fresh rules reproduce the desired output
	Similarity    float64 `protobuf:"fixed64,2,opt,name=similarity,proto3" json:"similarity,omitempty"`
	LowSimilarity bool    `protobuf:"varint,3,opt,name=low_similarity,json=lowSimilarity,proto3" json:"low_similarity,omitempty"`
	Confidence    float64 `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Band          string  `protobuf:"bytes,5,opt,name=band,proto3" json:"band,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LearnProcessorResponse) Reset() {
	*x = LearnProcessorResponse{}
	mi := &file_statline_v1_statline_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LearnProcessorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LearnProcessorResponse) ProtoMessage() {}

func (x *LearnProcessorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LearnProcessorResponse.ProtoReflect.Descriptor instead.
func (*LearnProcessorResponse) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{3}
}

func (x *LearnProcessorResponse) GetProcessor() *Processor {
	if x != nil {
		return x.Processor
	}
	return nil
}

func (x *LearnProcessorResponse) GetSimilarity() float64 {
	if x != nil {
		return x.Similarity
	}
	return 0
}

func (x *LearnProcessorResponse) GetLowSimilarity() bool {
	if x != nil {
		return x.LowSimilarity
	}
	return false
}

func (x *LearnProcessorResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *LearnProcessorResponse) GetBand() string {
	if x != nil {
		return x.Band
	}
	return ""
}

type ExtractDocumentRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Filename string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Document []byte                 `protobuf:"bytes,2,opt,name=document,proto3" json:"document,omitempty"`
	// pick one: explicit id, name, or neither (layout signature match)
	ProcessorId   string `protobuf:"bytes,3,opt,name=processor_id,json=processorId,proto3" json:"processor_id,omitempty"`
	ProcessorName string `protobuf:"bytes,4,opt,name=processor_name,json=processorName,proto3" json:"processor_name,omitempty"`
	Strict        bool   `protobuf:"varint,5,opt,name=strict,proto3" json:"strict,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentRequest) Reset() {
	*x = ExtractDocumentRequest{}
	mi := &file_statline_v1_statline_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentRequest) ProtoMessage() {}

func (x *ExtractDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExtractDocumentRequest) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExtractDocumentRequest) GetDocument() []byte {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *ExtractDocumentRequest) GetProcessorId() string {
	if x != nil {
		return x.ProcessorId
	}
	return ""
}

func (x *ExtractDocumentRequest) GetProcessorName() string {
	if x != nil {
		return x.ProcessorName
	}
	return ""
}

func (x *ExtractDocumentRequest) GetStrict() bool {
	if x != nil {
		return x.Strict
	}
	return false
}

type ExtractDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId  string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	ProcessorId   string                 `protobuf:"bytes,2,opt,name=processor_id,json=processorId,proto3" json:"processor_id,omitempty"`
	OutputJson    string                 `protobuf:"bytes,3,opt,name=output_json,json=outputJson,proto3" json:"output_json,omitempty"`
	Confidence    float64                `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Band          string                 `protobuf:"bytes,5,opt,name=band,proto3" json:"band,omitempty"`
	Success       bool                   `protobuf:"varint,6,opt,name=success,proto3" json:"success,omitempty"`
	Issues        []*Issue               `protobuf:"bytes,7,rep,name=issues,proto3" json:"issues,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentResponse) Reset() {
	*x = ExtractDocumentResponse{}
	mi := &file_statline_v1_statline_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentResponse) ProtoMessage() {}

func (x *ExtractDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExtractDocumentResponse) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{5}
}

func (x *ExtractDocumentResponse) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

func (x *ExtractDocumentResponse) GetProcessorId() string {
	if x != nil {
		return x.ProcessorId
	}
	return ""
}

func (x *ExtractDocumentResponse) GetOutputJson() string {
	if x != nil {
		return x.OutputJson
	}
	return ""
}

func (x *ExtractDocumentResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractDocumentResponse) GetBand() string {
	if x != nil {
		return x.Band
	}
	return ""
}

func (x *ExtractDocumentResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ExtractDocumentResponse) GetIssues() []*Issue {
	if x != nil {
		return x.Issues
	}
	return nil
}

type GetProcessorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProcessorRequest) Reset() {
	*x = GetProcessorRequest{}
	mi := &file_statline_v1_statline_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProcessorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProcessorRequest) ProtoMessage() {}

func (x *GetProcessorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProcessorRequest.ProtoReflect.Descriptor instead.
func (*GetProcessorRequest) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{6}
}

func (x *GetProcessorRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GetProcessorRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type GetProcessorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Processor     *Processor             `protobuf:"bytes,1,opt,name=processor,proto3" json:"processor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProcessorResponse) Reset() {
	*x = GetProcessorResponse{}
	mi := &file_statline_v1_statline_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProcessorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProcessorResponse) ProtoMessage() {}

func (x *GetProcessorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProcessorResponse.ProtoReflect.Descriptor instead.
func (*GetProcessorResponse) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{7}
}

func (x *GetProcessorResponse) GetProcessor() *Processor {
	if x != nil {
		return x.Processor
	}
	return nil
}

type ListProcessorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentType  string                 `protobuf:"bytes,1,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProcessorsRequest) Reset() {
	*x = ListProcessorsRequest{}
	mi := &file_statline_v1_statline_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProcessorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProcessorsRequest) ProtoMessage() {}

func (x *ListProcessorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProcessorsRequest.ProtoReflect.Descriptor instead.
func (*ListProcessorsRequest) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{8}
}

func (x *ListProcessorsRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

type ListProcessorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Processors    []*Processor           `protobuf:"bytes,1,rep,name=processors,proto3" json:"processors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProcessorsResponse) Reset() {
	*x = ListProcessorsResponse{}
	mi := &file_statline_v1_statline_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProcessorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProcessorsResponse) ProtoMessage() {}

func (x *ListProcessorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProcessorsResponse.ProtoReflect.Descriptor instead.
func (*ListProcessorsResponse) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{9}
}

func (x *ListProcessorsResponse) GetProcessors() []*Processor {
	if x != nil {
		return x.Processors
	}
	return nil
}

type ExportExtractionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProcessorId   string                 `protobuf:"bytes,1,opt,name=processor_id,json=processorId,proto3" json:"processor_id,omitempty"`
	Since         string                 `protobuf:"bytes,2,opt,name=since,proto3" json:"since,omitempty"` // RFC 3339 or YYYY-MM-DD; empty exports everything
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExtractionsRequest) Reset() {
	*x = ExportExtractionsRequest{}
	mi := &file_statline_v1_statline_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExtractionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExtractionsRequest) ProtoMessage() {}

func (x *ExportExtractionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExtractionsRequest.ProtoReflect.Descriptor instead.
func (*ExportExtractionsRequest) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{10}
}

func (x *ExportExtractionsRequest) GetProcessorId() string {
	if x != nil {
		return x.ProcessorId
	}
	return ""
}

func (x *ExportExtractionsRequest) GetSince() string {
	if x != nil {
		return x.Since
	}
	return ""
}

type ExportExtractionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExtractionsResponse) Reset() {
	*x = ExportExtractionsResponse{}
	mi := &file_statline_v1_statline_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExtractionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExtractionsResponse) ProtoMessage() {}

func (x *ExportExtractionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_statline_v1_statline_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExtractionsResponse.ProtoReflect.Descriptor instead.
func (*ExportExtractionsResponse) Descriptor() ([]byte, []int) {
	return file_statline_v1_statline_proto_rawDescGZIP(), []int{11}
}

func (x *ExportExtractionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_statline_v1_statline_proto protoreflect.FileDescriptor

const file_statline_v1_statline_proto_rawDesc = "" +
	"\n" +
	"\x1astatline/v1/statline.proto\x12\vstatline.v1\"\xb6\x02\n" +
	"\tProcessor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12\x18\n" +
	"\aversion\x18\x04 \x01(\x05R\aversion\x12\x1f\n" +
	"\vlayout_hash\x18\x05 \x01(\tR\n" +
	"layoutHash\x12\x1d\n" +
	"\n" +
	"rules_json\x18\x06 \x01(\tR\trulesJson\x12#\n" +
	"\rsuccess_count\x18\a \x01(\x05R\fsuccessCount\x12#\n" +
	"\rfailure_count\x18\b \x01(\x05R\ffailureCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"\x97\x01\n" +
	"\x05Issue\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x1a\n" +
	"\bseverity\x18\x02 \x01(\tR\bseverity\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x12\x14\n" +
	"\x05field\x18\x04 \x01(\tR\x05field\x12\x16\n" +
	"\x06region\x18\x05 \x01(\tR\x06region\x12\x16\n" +
	"\x06anchor\x18\x06 \x01(\tR\x06anchor\"\xcb\x01\n" +
	"\x15LearnProcessorRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x1a\n" +
	"\bdocument\x18\x02 \x01(\fR\bdocument\x12.\n" +
	"\x13desired_output_json\x18\x03 \x01(\tR\x11desiredOutputJson\x12#\n" +
	"\rdocument_type\x18\x04 \x01(\tR\fdocumentType\x12%\n" +
	"\x0eprocessor_name\x18\x05 \x01(\tR\rprocessorName\"\xc9\x01\n" +
	"\x16LearnProcessorResponse\x124\n" +
	"\tprocessor\x18\x01 \x01(\v2\x16.statline.v1.ProcessorR\tprocessor\x12\x1e\n" +
	"\n" +
	"similarity\x18\x02 \x01(\x01R\n" +
	"similarity\x12%\n" +
	"\x0elow_similarity\x18\x03 \x01(\bR\rlowSimilarity\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x01R\n" +
	"confidence\x12\x12\n" +
	"\x04band\x18\x05 \x01(\tR\x04band\"\xb2\x01\n" +
	"\x16ExtractDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x1a\n" +
	"\bdocument\x18\x02 \x01(\fR\bdocument\x12!\n" +
	"\fprocessor_id\x18\x03 \x01(\tR\vprocessorId\x12%\n" +
	"\x0eprocessor_name\x18\x04 \x01(\tR\rprocessorName\x12\x16\n" +
	"\x06strict\x18\x05 \x01(\bR\x06strict\"\xfc\x01\n" +
	"\x17ExtractDocumentResponse\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\x12!\n" +
	"\fprocessor_id\x18\x02 \x01(\tR\vprocessorId\x12\x1f\n" +
	"\voutput_json\x18\x03 \x01(\tR\n" +
	"outputJson\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x01R\n" +
	"confidence\x12\x12\n" +
	"\x04band\x18\x05 \x01(\tR\x04band\x12\x18\n" +
	"\asuccess\x18\x06 \x01(\bR\asuccess\x12*\n" +
	"\x06issues\x18\a \x03(\v2\x12.statline.v1.IssueR\x06issues\"9\n" +
	"\x13GetProcessorRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"L\n" +
	"\x14GetProcessorResponse\x124\n" +
	"\tprocessor\x18\x01 \x01(\v2\x16.statline.v1.ProcessorR\tprocessor\"<\n" +
	"\x15ListProcessorsRequest\x12#\n" +
	"\rdocument_type\x18\x01 \x01(\tR\fdocumentType\"P\n" +
	"\x16ListProcessorsResponse\x126\n" +
	"\n" +
	"processors\x18\x01 \x03(\v2\x16.statline.v1.ProcessorR\n" +
	"processors\"S\n" +
	"\x18ExportExtractionsRequest\x12!\n" +
	"\fprocessor_id\x18\x01 \x01(\tR\vprocessorId\x12\x14\n" +
	"\x05since\x18\x02 \x01(\tR\x05since\"/\n" +
	"\x19ExportExtractionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xde\x03\n" +
	"\x0fStatlineService\x12Y\n" +
	"\x0eLearnProcessor\x12\".statline.v1.LearnProcessorRequest\x1a#.statline.v1.LearnProcessorResponse\x12\\\n" +
	"\x0fExtractDocument\x12#.statline.v1.ExtractDocumentRequest\x1a$.statline.v1.ExtractDocumentResponse\x12S\n" +
	"\fGetProcessor\x12 .statline.v1.GetProcessorRequest\x1a!.statline.v1.GetProcessorResponse\x12Y\n" +
	"\x0eListProcessors\x12\".statline.v1.ListProcessorsRequest\x1a#.statline.v1.ListProcessorsResponse\x12b\n" +
	"\x11ExportExtractions\x12%.statline.v1.ExportExtractionsRequest\x1a&.statline.v1.ExportExtractionsResponseB?Z=github.com/statline/statline/gen/proto/statline/v1;statlinev1b\x06proto3"

var (
	file_statline_v1_statline_proto_rawDescOnce sync.Once
	file_statline_v1_statline_proto_rawDescData []byte
)

func file_statline_v1_statline_proto_rawDescGZIP() []byte {
	file_statline_v1_statline_proto_rawDescOnce.Do(func() {
		file_statline_v1_statline_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_statline_v1_statline_proto_rawDesc), len(file_statline_v1_statline_proto_rawDesc)))
	})
	return file_statline_v1_statline_proto_rawDescData
}

var file_statline_v1_statline_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_statline_v1_statline_proto_goTypes = []any{
	(*Processor)(nil),                 // 0: statline.v1.Processor
	(*Issue)(nil),                     // 1: statline.v1.Issue
	(*LearnProcessorRequest)(nil),     // 2: statline.v1.LearnProcessorRequest
	(*LearnProcessorResponse)(nil),    // 3: statline.v1.LearnProcessorResponse
	(*ExtractDocumentRequest)(nil),    // 4: statline.v1.ExtractDocumentRequest
	(*ExtractDocumentResponse)(nil),   // 5: statline.v1.ExtractDocumentResponse
	(*GetProcessorRequest)(nil),       // 6: statline.v1.GetProcessorRequest
	(*GetProcessorResponse)(nil),      // 7: statline.v1.GetProcessorResponse
	(*ListProcessorsRequest)(nil),     // 8: statline.v1.ListProcessorsRequest
	(*ListProcessorsResponse)(nil),    // 9: statline.v1.ListProcessorsResponse
	(*ExportExtractionsRequest)(nil),  // 10: statline.v1.ExportExtractionsRequest
	(*ExportExtractionsResponse)(nil), // 11: statline.v1.ExportExtractionsResponse
}
var file_statline_v1_statline_proto_depIdxs = []int32{
	0,  // 0: statline.v1.LearnProcessorResponse.processor:type_name -> statline.v1.Processor
	1,  // 1: statline.v1.ExtractDocumentResponse.issues:type_name -> statline.v1.Issue
	0,  // 2: statline.v1.GetProcessorResponse.processor:type_name -> statline.v1.Processor
	0,  // 3: statline.v1.ListProcessorsResponse.processors:type_name -> statline.v1.Processor
	2,  // 4: statline.v1.StatlineService.LearnProcessor:input_type -> statline.v1.LearnProcessorRequest
	4,  // 5: statline.v1.StatlineService.ExtractDocument:input_type -> statline.v1.ExtractDocumentRequest
	6,  // 6: statline.v1.StatlineService.GetProcessor:input_type -> statline.v1.GetProcessorRequest
	8,  // 7: statline.v1.StatlineService.ListProcessors:input_type -> statline.v1.ListProcessorsRequest
	10, // 8: statline.v1.StatlineService.ExportExtractions:input_type -> statline.v1.ExportExtractionsRequest
	3,  // 9: statline.v1.StatlineService.LearnProcessor:output_type -> statline.v1.LearnProcessorResponse
	5,  // 10: statline.v1.StatlineService.ExtractDocument:output_type -> statline.v1.ExtractDocumentResponse
	7,  // 11: statline.v1.StatlineService.GetProcessor:output_type -> statline.v1.GetProcessorResponse
	9,  // 12: statline.v1.StatlineService.ListProcessors:output_type -> statline.v1.ListProcessorsResponse
	11, // 13: statline.v1.StatlineService.ExportExtractions:output_type -> statline.v1.ExportExtractionsResponse
	9,  // [9:14] is the sub-list for method output_type
	4,  // [4:9] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_statline_v1_statline_proto_init() }
func file_statline_v1_statline_proto_init() {
	if File_statline_v1_statline_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_statline_v1_statline_proto_rawDesc), len(file_statline_v1_statline_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_statline_v1_statline_proto_goTypes,
		DependencyIndexes: file_statline_v1_statline_proto_depIdxs,
		MessageInfos:      file_statline_v1_statline_proto_msgTypes,
	}.Build()
	File_statline_v1_statline_proto = out.File
	file_statline_v1_statline_proto_goTypes = nil
	file_statline_v1_statline_proto_depIdxs = nil
}
