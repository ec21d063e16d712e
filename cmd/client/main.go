package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/adrianliechti/lector/pkg/client"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff", ".webp", ".gif"}

type record struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`

	TextRegions int    `json:"text_regions"`
	Text        string `json:"text"`

	Status string `json:"status"`
}

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")

	pipelineFlag := flag.String("pipeline", "", "pipeline id")
	languageFlag := flag.String("language", "", "language hint")

	outputFlag := flag.String("output", "", "output csv file")

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("usage: client [flags] <image file or directory> ...")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	if _, err := c.Health.Check(ctx); err != nil {
		panic(err)
	}

	files, err := collectImages(flag.Args())

	if err != nil {
		panic(err)
	}

	if len(files) == 0 {
		fmt.Println("no image files found")
		os.Exit(1)
	}

	if len(files) == 1 && *outputFlag == "" {
		if err := printImage(ctx, c, files[0], *pipelineFlag, *languageFlag); err != nil {
			panic(err)
		}

		return
	}

	output := *outputFlag

	if output == "" {
		output = "ocr_results_" + time.Now().Format("20060102_150405") + ".csv"
	}

	var records []record

	successful := 0
	failed := 0

	for i, path := range files {
		fmt.Printf("[%d/%d] %s... ", i+1, len(files), filepath.Base(path))

		rec := processImage(ctx, c, path, *pipelineFlag, *languageFlag)

		if rec.Status == "success" {
			successful++
			fmt.Printf("ok (%d regions)\n", rec.TextRegions)
		} else {
			failed++
			fmt.Println(rec.Status)
		}

		records = append(records, rec)
	}

	if err := writeCSV(output, records); err != nil {
		panic(err)
	}

	jsonOutput := strings.TrimSuffix(output, filepath.Ext(output)) + ".json"

	if err := writeJSON(jsonOutput, records); err != nil {
		panic(err)
	}

	fmt.Println()
	fmt.Printf("processed %d images (%d successful, %d failed)\n", len(files), successful, failed)
	fmt.Println("results: " + output + ", " + jsonOutput)
}

func collectImages(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)

		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)

		if err != nil {
			return nil, err
		}

		var matches []string

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			ext := strings.ToLower(filepath.Ext(entry.Name()))

			if !slices.Contains(imageExtensions, ext) {
				continue
			}

			matches = append(matches, filepath.Join(arg, entry.Name()))
		}

		slices.Sort(matches)

		files = append(files, matches...)
	}

	return files, nil
}

func printImage(ctx context.Context, c *client.Client, path, pipeline, language string) error {
	f, err := os.Open(path)

	if err != nil {
		return err
	}

	defer f.Close()

	result, err := c.Recognitions.New(ctx, client.RecognitionRequest{
		Name:   filepath.Base(path),
		Reader: f,

		Pipeline: pipeline,
		Language: language,
	})

	if err != nil {
		return err
	}

	fmt.Println(result.Message)

	for i, region := range result.Results {
		fmt.Printf("%d. %s\n", i+1, region.Text)
		fmt.Printf("   coordinates: %v\n", region.Coordinates)
	}

	return nil
}

func processImage(ctx context.Context, c *client.Client, path, pipeline, language string) record {
	rec := record{
		Filename: filepath.Base(path),
		Path:     path,
	}

	f, err := os.Open(path)

	if err != nil {
		rec.Status = "error: " + err.Error()
		return rec
	}

	defer f.Close()

	result, err := c.Recognitions.New(ctx, client.RecognitionRequest{
		Name:   filepath.Base(path),
		Reader: f,

		Pipeline: pipeline,
		Language: language,
	})

	if err != nil {
		rec.Status = "error: " + err.Error()
		return rec
	}

	var texts []string

	for _, region := range result.Results {
		texts = append(texts, region.Text)
	}

	rec.TextRegions = result.TotalBoxes
	rec.Text = strings.Join(texts, " ")
	rec.Status = "success"

	return rec
}

func writeCSV(path string, records []record) error {
	f, err := os.Create(path)

	if err != nil {
		return err
	}

	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"filename", "path", "text_regions", "text", "status"}); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{rec.Filename, rec.Path, strconv.Itoa(rec.TextRegions), rec.Text, rec.Status}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

func writeJSON(path string, records []record) error {
	data, err := json.MarshalIndent(records, "", "  ")

	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
