package api

import (
	"filevora/internal/agent"
	"filevora/internal/history"
	"filevora/internal/tools"
)

// FromDescriptor converts a tool descriptor into its transport view.
func FromDescriptor(desc tools.Descriptor) ToolView {
	return ToolView{
		ID:            desc.ID,
		Name:          desc.Name,
		Description:   desc.Description,
		Category:      string(desc.Category),
		Endpoint:      desc.Endpoint,
		AcceptedTypes: desc.AcceptedTypes,
		Multiple:      desc.Multiple,
		Interactive:   desc.Interactive,
		ComingSoon:    desc.ComingSoon(),
		PresetOptions: desc.PresetOptions,
	}
}

// FromDescriptors converts a descriptor slice into views, preserving order.
func FromDescriptors(descs []tools.Descriptor) []ToolView {
	out := make([]ToolView, 0, len(descs))
	for _, desc := range descs {
		out = append(out, FromDescriptor(desc))
	}
	return out
}

// FromResolution converts an agent resolution into its transport view.
func FromResolution(res *agent.Resolution) AgentResponse {
	return AgentResponse{
		Tool:    FromDescriptor(res.Tool),
		Format:  res.Params.Format,
		Angle:   res.Params.Angle,
		Quality: res.Params.Quality,
		Score:   res.Score,
	}
}

// FromConversion converts a history record into its transport view.
func FromConversion(conv history.Conversion) ConversionView {
	view := ConversionView{
		ID:             conv.ID,
		UserID:         conv.UserID,
		ToolID:         conv.ToolID,
		FileName:       conv.FileName,
		OutputFileName: conv.OutputFileName,
		DownloadURL:    conv.DownloadURL,
		FileSize:       conv.FileSize,
		Status:         string(conv.Status),
	}
	if !conv.CreatedAt.IsZero() {
		view.CreatedAt = conv.CreatedAt.Format(dateTimeFormat)
	}
	return view
}

// FromConversions converts history records into views, preserving order.
func FromConversions(convs []history.Conversion) []ConversionView {
	out := make([]ConversionView, 0, len(convs))
	for _, conv := range convs {
		out = append(out, FromConversion(conv))
	}
	return out
}

// FromSubscriber converts a subscriber record into its transport view.
func FromSubscriber(sub history.Subscriber) SubscriberView {
	view := SubscriberView{
		ID:     sub.ID,
		Email:  sub.Email,
		Source: sub.Source,
	}
	if !sub.SubscribedAt.IsZero() {
		view.SubscribedAt = sub.SubscribedAt.Format(dateTimeFormat)
	}
	return view
}

// FromMessage converts a contact message into its transport view.
func FromMessage(msg history.Message) MessageView {
	view := MessageView{
		ID:      msg.ID,
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Body,
		Read:    msg.Read,
	}
	if !msg.CreatedAt.IsZero() {
		view.CreatedAt = msg.CreatedAt.Format(dateTimeFormat)
	}
	return view
}

// FromMessages converts contact messages into views, preserving order.
func FromMessages(msgs []history.Message) []MessageView {
	out := make([]MessageView, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, FromMessage(msg))
	}
	return out
}
