package tools

// catalog is the full tool inventory. Order matters only for listing; the
// registry indexes by id.
var catalog = []Descriptor{
	// PDF & Documents
	{
		ID:            "merge-pdf",
		Name:          "Merge PDF",
		Description:   "Combine multiple PDFs into one unified document.",
		Category:      CategoryPDF,
		Endpoint:      "/process/merge-pdf",
		AcceptedTypes: ".pdf,application/pdf",
		Multiple:      true,
		Kind:          KindGeneric,
	},
	{
		ID:            "split-pdf",
		Name:          "Split PDF",
		Description:   "Extract pages from your PDF files.",
		Category:      CategoryPDF,
		Endpoint:      "/process/split-pdf",
		AcceptedTypes: ".pdf,application/pdf",
		Kind:          KindGeneric,
	},
	{
		ID:            "compress-pdf",
		Name:          "Compress PDF",
		Description:   "Reduce file size while analyzing quality.",
		Category:      CategoryPDF,
		Endpoint:      "/process/compress-pdf",
		AcceptedTypes: ".pdf,application/pdf",
		Kind:          KindPDFCompress,
	},
	{
		ID:            "pdf-converter",
		Name:          "PDF Converter",
		Description:   "Convert PDFs to various formats.",
		Category:      CategoryPDF,
		Endpoint:      "/process/pdf-to-image",
		AcceptedTypes: ".pdf,application/pdf",
		Kind:          KindImageConvert,
	},
	{
		ID:            "pdf-to-word",
		Name:          "PDF to Word",
		Description:   "Convert PDF documents to Word.",
		Category:      CategoryPDF,
		Endpoint:      "/process/pdf-to-word",
		AcceptedTypes: ".pdf,application/pdf",
		Kind:          KindGeneric,
	},
	{
		ID:            "pdf-to-jpg",
		Name:          "PDF to JPG",
		Description:   "Convert PDF pages to JPG images.",
		Category:      CategoryPDF,
		Endpoint:      "/process/pdf-to-image",
		AcceptedTypes: ".pdf,application/pdf",
		PresetOptions: map[string]string{"format": "jpeg"},
		Kind:          KindImageConvert,
	},
	{
		ID:            "pdf-to-epub",
		Name:          "PDF to EPUB",
		Description:   "Convert PDF documents to EPUB.",
		Category:      CategoryPDF,
		Endpoint:      "/process/pdf-to-epub",
		AcceptedTypes: ".pdf,application/pdf",
		Kind:          KindGeneric,
	},
	{
		ID:            "epub-to-pdf",
		Name:          "EPUB to PDF",
		Description:   "Convert EPUB ebooks to PDF.",
		Category:      CategoryPDF,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: ".epub",
		Kind:          KindGeneric,
	},
	{
		ID:            "image-to-pdf",
		Name:          "Image to PDF",
		Description:   "Convert any image to PDF.",
		Category:      CategoryPDF,
		Endpoint:      "/process/image-to-pdf",
		AcceptedTypes: "image/*",
		Multiple:      true,
		Kind:          KindGeneric,
	},
	{
		ID:            "docx-to-pdf",
		Name:          "DOCX to PDF",
		Description:   "Convert Word documents to PDF.",
		Category:      CategoryPDF,
		Endpoint:      "/process/docx-to-pdf",
		AcceptedTypes: ".docx,application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Kind:          KindGeneric,
	},
	{
		ID:            "jpg-to-pdf",
		Name:          "JPG to PDF",
		Description:   "Convert JPG images to PDF.",
		Category:      CategoryPDF,
		Endpoint:      "/process/image-to-pdf",
		AcceptedTypes: "image/jpeg,image/jpg",
		Multiple:      true,
		Kind:          KindGeneric,
	},
	{
		ID:            "ebook-converter",
		Name:          "Ebook Converter",
		Description:   "Convert between ebook formats.",
		Category:      CategoryPDF,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "*",
		Kind:          KindGeneric,
	},
	{
		ID:            "document-converter",
		Name:          "Document Converter",
		Description:   "Convert generic documents.",
		Category:      CategoryPDF,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "*",
		Kind:          KindGeneric,
	},
	{
		ID:            "chat-with-pdf",
		Name:          "Chat with PDF",
		Description:   "Analyze and chat with your PDF documents using AI.",
		Category:      CategoryPDF,
		Endpoint:      "/process/chat-pdf",
		AcceptedTypes: ".pdf,application/pdf",
		Interactive:   true,
		Kind:          KindGeneric,
	},

	// Image
	{
		ID:            "convert-image",
		Name:          "Image Converter",
		Description:   "Convert images to various formats.",
		Category:      CategoryImage,
		Endpoint:      "/process/convert-image",
		AcceptedTypes: "image/*",
		Multiple:      true,
		Kind:          KindImageConvert,
	},
	{
		ID:            "rotate-image",
		Name:          "Rotate Image",
		Description:   "Rotate images easily.",
		Category:      CategoryImage,
		Endpoint:      "/process/rotate-image",
		AcceptedTypes: "image/*",
		Kind:          KindRotate,
	},
	{
		ID:            "webp-to-png",
		Name:          "WEBP to PNG",
		Description:   "Convert WEBP to PNG.",
		Category:      CategoryImage,
		Endpoint:      "/process/convert-image",
		AcceptedTypes: "image/webp",
		Multiple:      true,
		PresetOptions: map[string]string{"target_format": "PNG"},
		Kind:          KindImageConvert,
	},
	{
		ID:            "jfif-to-png",
		Name:          "JFIF to PNG",
		Description:   "Convert JFIF to PNG.",
		Category:      CategoryImage,
		Endpoint:      "/process/convert-image",
		AcceptedTypes: "image/jpeg,image/pjpeg",
		Multiple:      true,
		PresetOptions: map[string]string{"target_format": "PNG"},
		Kind:          KindImageConvert,
	},
	{
		ID:            "png-to-svg",
		Name:          "PNG to SVG",
		Description:   "Convert PNG to SVG vector.",
		Category:      CategoryImage,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "image/png",
		Kind:          KindGeneric,
	},
	{
		ID:            "heic-to-jpg",
		Name:          "HEIC to JPG",
		Description:   "Convert HEIC to JPG.",
		Category:      CategoryImage,
		Endpoint:      "/process/convert-image",
		AcceptedTypes: ".heic,image/heic",
		Multiple:      true,
		PresetOptions: map[string]string{"target_format": "JPEG"},
		Kind:          KindImageConvert,
	},
	{
		ID:            "heic-to-png",
		Name:          "HEIC to PNG",
		Description:   "Convert HEIC to PNG.",
		Category:      CategoryImage,
		Endpoint:      "/process/convert-image",
		AcceptedTypes: ".heic,image/heic",
		Multiple:      true,
		PresetOptions: map[string]string{"target_format": "PNG"},
		Kind:          KindImageConvert,
	},
	{
		ID:            "webp-to-jpg",
		Name:          "WEBP to JPG",
		Description:   "Convert WEBP to JPG.",
		Category:      CategoryImage,
		Endpoint:      "/process/convert-image",
		AcceptedTypes: "image/webp",
		Multiple:      true,
		PresetOptions: map[string]string{"target_format": "JPEG"},
		Kind:          KindImageConvert,
	},
	{
		ID:            "svg-converter",
		Name:          "SVG Converter",
		Description:   "Convert files to/from SVG.",
		Category:      CategoryImage,
		Endpoint:      "/process/convert-image",
		AcceptedTypes: "image/*,image/svg+xml",
		Multiple:      true,
		Kind:          KindImageConvert,
	},
	{
		ID:            "collage-maker",
		Name:          "Collage Maker",
		Description:   "Combine multiple images into a single collage.",
		Category:      CategoryImage,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "image/*",
		Multiple:      true,
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "image-resizer",
		Name:          "Image Resizer",
		Description:   "Resize images to any dimensions.",
		Category:      CategoryImage,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "image/*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "crop-image",
		Name:          "Crop Image",
		Description:   "Crop and trim your images.",
		Category:      CategoryImage,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "image/*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "color-picker",
		Name:          "Color Picker",
		Description:   "Pick colors and get HEX, RGB, and CSS values.",
		Category:      CategoryImage,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "meme-generator",
		Name:          "Meme Generator",
		Description:   "Create memes with custom text on images.",
		Category:      CategoryImage,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "image/*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "photo-editor",
		Name:          "Photo Editor",
		Description:   "Adjust brightness, contrast, and more.",
		Category:      CategoryImage,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "image/*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "image-compressor",
		Name:          "Image Compressor",
		Description:   "Reduce image file size with quality and format options.",
		Category:      CategoryImage,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "image/*",
		Interactive:   true,
		Kind:          KindGeneric,
	},

	// GIF
	{
		ID:            "video-to-gif",
		Name:          "Video to GIF",
		Description:   "Create GIFs from video.",
		Category:      CategoryGIF,
		Endpoint:      "/process/video-to-gif",
		AcceptedTypes: "video/*",
		Kind:          KindGeneric,
	},
	{
		ID:            "mp4-to-gif",
		Name:          "MP4 to GIF",
		Description:   "Convert MP4 to GIF.",
		Category:      CategoryGIF,
		Endpoint:      "/process/video-to-gif",
		AcceptedTypes: "video/mp4",
		Kind:          KindGeneric,
	},
	{
		ID:            "webm-to-gif",
		Name:          "WEBM to GIF",
		Description:   "Convert WEBM to GIF.",
		Category:      CategoryGIF,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "video/webm",
		Kind:          KindGeneric,
	},
	{
		ID:            "apng-to-gif",
		Name:          "APNG to GIF",
		Description:   "Convert APNG to GIF.",
		Category:      CategoryGIF,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "image/apng,image/png",
		Kind:          KindGeneric,
	},
	{
		ID:            "gif-to-mp4",
		Name:          "GIF to MP4",
		Description:   "Convert GIF to MP4 video.",
		Category:      CategoryGIF,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "image/gif",
		Kind:          KindGeneric,
	},
	{
		ID:            "gif-to-apng",
		Name:          "GIF to APNG",
		Description:   "Convert GIF to APNG.",
		Category:      CategoryGIF,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "image/gif",
		Kind:          KindGeneric,
	},
	{
		ID:            "image-to-gif",
		Name:          "Image to GIF",
		Description:   "Convert images to GIF.",
		Category:      CategoryGIF,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "image/*",
		Multiple:      true,
		Kind:          KindGeneric,
	},
	{
		ID:            "mov-to-gif",
		Name:          "MOV to GIF",
		Description:   "Convert MOV to GIF.",
		Category:      CategoryGIF,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "video/quicktime",
		Kind:          KindGeneric,
	},
	{
		ID:            "avi-to-gif",
		Name:          "AVI to GIF",
		Description:   "Convert AVI to GIF.",
		Category:      CategoryGIF,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "video/x-msvideo",
		Kind:          KindGeneric,
	},

	// Video & Audio
	{
		ID:            "merge-video",
		Name:          "Merge Video",
		Description:   "Combine multiple videos into one.",
		Category:      CategoryVideoAudio,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "video/*",
		Multiple:      true,
		Kind:          KindGeneric,
	},
	{
		ID:            "compress-video",
		Name:          "Compress Video",
		Description:   "Reduce video size without losing quality.",
		Category:      CategoryVideoAudio,
		Endpoint:      "/process/compress-video",
		AcceptedTypes: "video/*",
		Kind:          KindGeneric,
	},
	{
		ID:            "video-to-mp4",
		Name:          "Video to MP4",
		Description:   "Convert any video to MP4 format.",
		Category:      CategoryVideoAudio,
		Endpoint:      "/process/convert-video",
		AcceptedTypes: "video/*",
		PresetOptions: map[string]string{"target_format": "mp4"},
		Kind:          KindGeneric,
	},
	{
		ID:            "video-to-mp3",
		Name:          "Video to MP3",
		Description:   "Extract audio from video files.",
		Category:      CategoryVideoAudio,
		Endpoint:      "/process/extract-audio",
		AcceptedTypes: "video/*",
		PresetOptions: map[string]string{"target_format": "mp3"},
		Kind:          KindGeneric,
	},
	{
		ID:            "trim-video",
		Name:          "Trim Video",
		Description:   "Cut out unwanted parts of your video.",
		Category:      CategoryVideoAudio,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "video/*",
		Kind:          KindGeneric,
	},
	{
		ID:            "compress-audio",
		Name:          "Compress Audio",
		Description:   "Reduce audio file size.",
		Category:      CategoryVideoAudio,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "audio/*",
		Kind:          KindGeneric,
	},
	{
		ID:            "convert-audio",
		Name:          "Audio Converter",
		Description:   "Convert audio between formats.",
		Category:      CategoryVideoAudio,
		Endpoint:      "/process/convert-audio",
		AcceptedTypes: "audio/*",
		PresetOptions: map[string]string{"target_format": "mp3"},
		Kind:          KindGeneric,
	},
	{
		ID:            "volume-booster",
		Name:          "Volume Booster",
		Description:   "Increase audio volume.",
		Category:      CategoryVideoAudio,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "audio/*",
		Kind:          KindGeneric,
	},
	{
		ID:            "voice-recorder",
		Name:          "Voice Recorder",
		Description:   "Record your voice online.",
		Category:      CategoryVideoAudio,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},

	// Others
	{
		ID:            "length-converter",
		Name:          "Length Converter",
		Description:   "Convert basic length units.",
		Category:      CategoryOthers,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "weight-converter",
		Name:          "Weight Converter",
		Description:   "Convert weight units.",
		Category:      CategoryOthers,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "temperature-converter",
		Name:          "Temperature Converter",
		Description:   "Celsius to Fahrenheit and more.",
		Category:      CategoryOthers,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "speed-converter",
		Name:          "Speed Converter",
		Description:   "Convert speed units.",
		Category:      CategoryOthers,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "volume-converter",
		Name:          "Volume Converter",
		Description:   "Convert volume units.",
		Category:      CategoryOthers,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "area-converter",
		Name:          "Area Converter",
		Description:   "Convert area measurement units.",
		Category:      CategoryOthers,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "utc-converter",
		Name:          "UTC Converter",
		Description:   "Convert local time to UTC.",
		Category:      CategoryOthers,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "time-zone-map",
		Name:          "Time Zone Map",
		Description:   "Visual time zone map.",
		Category:      CategoryOthers,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "pst-to-est",
		Name:          "PST to EST",
		Description:   "Convert PST to EST time.",
		Category:      CategoryOthers,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "rar-to-zip",
		Name:          "RAR to Zip",
		Description:   "Convert RAR archives to Zip.",
		Category:      CategoryOthers,
		Endpoint:      "/process/archive-convert",
		AcceptedTypes: ".rar",
		Kind:          KindGeneric,
	},
	{
		ID:            "7z-extractor",
		Name:          "7z Extractor",
		Description:   "Extract 7z files online.",
		Category:      CategoryOthers,
		Endpoint:      "/process/archive-convert",
		AcceptedTypes: ".7z",
		Kind:          KindGeneric,
	},
	{
		ID:            "tar-gz-converter",
		Name:          "Tar.gz Converter",
		Description:   "Convert Tar.gz files.",
		Category:      CategoryOthers,
		Endpoint:      "/process/archive-convert",
		AcceptedTypes: ".tar.gz,.tgz",
		Kind:          KindGeneric,
	},
	{
		ID:            "unit-converter",
		Name:          "Unit Converter",
		Description:   "Convert units of measurement.",
		Category:      CategoryOthers,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "time-converter",
		Name:          "Time Converter",
		Description:   "Convert time zones and durations.",
		Category:      CategoryOthers,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
	{
		ID:            "archive-converter",
		Name:          "Archive Converter",
		Description:   "Convert zip, rar, 7z archives.",
		Category:      CategoryOthers,
		Endpoint:      EndpointComingSoon,
		AcceptedTypes: ".zip,.rar,.7z",
		Kind:          KindGeneric,
	},
	{
		ID:            "qr-code-generator",
		Name:          "QR Code Generator",
		Description:   "Generate QR codes from text or URLs.",
		Category:      CategoryOthers,
		Endpoint:      EndpointInteractive,
		AcceptedTypes: "*",
		Interactive:   true,
		Kind:          KindGeneric,
	},
}
