package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/obsidian-ics/internal/diary"
	"github.com/taigrr/obsidian-ics/internal/ics"
)

func handleFeedURL(ctx context.Context, req *mcp.CallToolRequest, input FeedURLInput) (*mcp.CallToolResult, FeedURLOutput, error) {
	return nil, FeedURLOutput{URL: feedConfig.FeedURL()}, nil
}

func handleListDiary(ctx context.Context, req *mcp.CallToolRequest, input ListDiaryInput) (*mcp.CallToolResult, ListDiaryOutput, error) {
	files, err := vaultService.ListNotes()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListDiaryOutput{}, err
	}

	infos := []DiaryFileInfo{}
	for _, f := range files {
		if !diary.IsDiaryFile(f, feedConfig.DailyNoteFormat, feedConfig.DailyNoteFolder) {
			continue
		}
		year, month, day, err := diary.DateOf(f.Basename, feedConfig.DailyNoteFormat)
		if err != nil {
			continue
		}
		infos = append(infos, DiaryFileInfo{
			Path: f.Path,
			Date: fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		})
	}

	return nil, ListDiaryOutput{Files: infos, Total: len(infos)}, nil
}

func handleGenerateFeed(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
	events, err := feedBuilder.Build(ctx)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, GenerateOutput{}, err
	}

	body, err := ics.Encode(events)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, GenerateOutput{}, err
	}

	return nil, GenerateOutput{Calendar: body, Events: len(events)}, nil
}
