package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"filevora/internal/canvas"
)

func newCanvasCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canvas",
		Short: "Local image operations (collage, resize, crop, rotate, meme, adjust)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newCollageCommand())
	cmd.AddCommand(newResizeCommand())
	cmd.AddCommand(newCropCommand())
	cmd.AddCommand(newRotateCommand())
	cmd.AddCommand(newMemeCommand())
	cmd.AddCommand(newAdjustCommand())
	return cmd
}

func newCollageCommand() *cobra.Command {
	var widthFlag, heightFlag int
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "collage <image>...",
		Short: "Combine up to four images into one collage",
		Args:  cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			images := make([]image.Image, 0, len(args))
			for _, path := range args {
				img, err := loadImage(path)
				if err != nil {
					return err
				}
				images = append(images, img)
			}
			out, err := canvas.Collage(images, widthFlag, heightFlag)
			if err != nil {
				return err
			}
			return saveImage(cmd, out, outputFlag)
		},
	}

	cmd.Flags().IntVar(&widthFlag, "width", 1200, "Canvas width in pixels")
	cmd.Flags().IntVar(&heightFlag, "height", 1200, "Canvas height in pixels")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "collage.png", "Output file")
	return cmd
}

func newResizeCommand() *cobra.Command {
	var widthFlag, heightFlag int
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "resize <image>",
		Short: "Resize an image to exact dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			out, err := canvas.Resize(img, widthFlag, heightFlag)
			if err != nil {
				return err
			}
			return saveImage(cmd, out, outputOrDefault(outputFlag, args[0], "resized"))
		},
	}

	cmd.Flags().IntVar(&widthFlag, "width", 0, "Target width in pixels")
	cmd.Flags().IntVar(&heightFlag, "height", 0, "Target height in pixels")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func newCropCommand() *cobra.Command {
	var xFlag, yFlag, widthFlag, heightFlag int
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "crop <image>",
		Short: "Crop a rectangle out of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			rect := image.Rect(xFlag, yFlag, xFlag+widthFlag, yFlag+heightFlag).Add(img.Bounds().Min)
			out, err := canvas.Crop(img, rect)
			if err != nil {
				return err
			}
			return saveImage(cmd, out, outputOrDefault(outputFlag, args[0], "cropped"))
		},
	}

	cmd.Flags().IntVar(&xFlag, "x", 0, "Left edge of the crop")
	cmd.Flags().IntVar(&yFlag, "y", 0, "Top edge of the crop")
	cmd.Flags().IntVar(&widthFlag, "width", 0, "Crop width in pixels")
	cmd.Flags().IntVar(&heightFlag, "height", 0, "Crop height in pixels")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func newRotateCommand() *cobra.Command {
	var angleFlag int
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "rotate <image>",
		Short: "Rotate an image by a right angle locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			out, err := canvas.Rotate(img, angleFlag)
			if err != nil {
				return err
			}
			return saveImage(cmd, out, outputOrDefault(outputFlag, args[0], "rotated"))
		},
	}

	cmd.Flags().IntVar(&angleFlag, "angle", 90, "Rotation angle (90, 180, 270)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file")
	return cmd
}

func newMemeCommand() *cobra.Command {
	var topFlag, bottomFlag, outputFlag string

	cmd := &cobra.Command{
		Use:   "meme <image>",
		Short: "Caption an image with top and bottom text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if topFlag == "" && bottomFlag == "" {
				return fmt.Errorf("provide --top or --bottom text")
			}
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			out := canvas.Meme(img, topFlag, bottomFlag)
			return saveImage(cmd, out, outputOrDefault(outputFlag, args[0], "meme"))
		},
	}

	cmd.Flags().StringVar(&topFlag, "top", "", "Top caption")
	cmd.Flags().StringVar(&bottomFlag, "bottom", "", "Bottom caption")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file")
	return cmd
}

func newAdjustCommand() *cobra.Command {
	var brightnessFlag, contrastFlag, saturationFlag, blurFlag int
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "adjust <image>",
		Short: "Adjust brightness, contrast, saturation, and blur",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			out := canvas.Adjust(img, canvas.Adjustments{
				Brightness: brightnessFlag,
				Contrast:   contrastFlag,
				Saturation: saturationFlag,
				Blur:       blurFlag,
			})
			return saveImage(cmd, out, outputOrDefault(outputFlag, args[0], "adjusted"))
		},
	}

	cmd.Flags().IntVar(&brightnessFlag, "brightness", 0, "Brightness shift (-100 to 100)")
	cmd.Flags().IntVar(&contrastFlag, "contrast", 100, "Contrast percentage (100 = unchanged)")
	cmd.Flags().IntVar(&saturationFlag, "saturation", 100, "Saturation percentage (100 = unchanged)")
	cmd.Flags().IntVar(&blurFlag, "blur", 0, "Box blur radius in pixels")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file")
	return cmd
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := canvas.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func saveImage(cmd *cobra.Command, img image.Image, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "png"
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := canvas.Encode(f, img, format, 0); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return nil
}

func outputOrDefault(output, input, suffix string) string {
	if output != "" {
		return output
	}
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(filepath.Base(input), ext)
	if ext == "" || strings.EqualFold(ext, ".webp") {
		ext = ".png"
	}
	return filepath.Join(filepath.Dir(input), base+"-"+suffix+ext)
}
