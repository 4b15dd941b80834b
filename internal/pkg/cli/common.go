package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/swimboard/swimboard/internal/pkg/cache"
	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
	"github.com/swimboard/swimboard/internal/pkg/model"
	"github.com/swimboard/swimboard/internal/pkg/view"
)

// cacheDir resolves the cache directory against the working directory.
func cacheDir(root *rootCommand) string {
	dir := root.options.CacheDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root.options.WorkingDirectory, dir)
	}
	return dir
}

// outputDir resolves the output directory against the working directory.
func outputDir(root *rootCommand) string {
	dir := root.options.OutputDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root.options.WorkingDirectory, dir)
	}
	return dir
}

// newCache opens the local cache, it must exist.
func newCache(root *rootCommand) (*cache.Cache, error) {
	dir := cacheDir(root)
	c := cache.New(root.fs, dir, root.logger)
	if exists, err := c.Exists(); err != nil {
		return nil, err
	} else if !exists {
		return nil, fmt.Errorf(`cache directory "%s" not found, run with "--cache-dir" or capture API responses first`, dir)
	}
	return c, nil
}

// loadFiles loads one cache glob, partial load failures are warnings.
func loadFiles(root *rootCommand, load func() ([]cache.File, error)) []cache.File {
	files, err := load()
	if err != nil {
		root.logger.Warn(err.Error())
	}
	return files
}

// loadEventViews assembles the event views from the cache. Events come
// from the event lists and event nodes, heat details from the per-event
// detail documents, athlete names from the athlete documents.
func loadEventViews(root *rootCommand) ([]view.EventView, error) {
	c, err := newCache(root)
	if err != nil {
		return nil, err
	}

	athletes := loadFiles(root, c.Athletes)
	eventLists := loadFiles(root, c.EventLists)
	eventNodes := loadFiles(root, c.EventNodes)
	eventDetails := loadFiles(root, c.EventDetails)

	// Events from lists and nodes, first document wins on duplicate ids
	eventDocs := cache.Documents(eventLists)
	for _, doc := range cache.Documents(eventNodes) {
		eventDocs = append(eventDocs, model.EventNodesToDocument(doc))
	}
	events := model.EventsFromGraph(jsonapi.Resolve(eventDocs...))
	if len(events) == 0 {
		return nil, fmt.Errorf(`no events found in cache directory "%s"`, cacheDir(root))
	}

	// Detail documents keyed by the event id they describe
	athleteDocs := cache.Documents(athletes)
	details := make(map[string]*jsonapi.Document)
	for _, file := range eventDetails {
		if len(file.Doc.Data) > 0 {
			details[file.Doc.Data[0].ID] = file.Doc
		}
	}

	views := make([]view.EventView, 0, len(events))
	for _, event := range events {
		detail, found := details[event.ID()]
		if !found {
			views = append(views, view.EventView{Event: event})
			continue
		}
		docs := append([]*jsonapi.Document{detail}, athleteDocs...)
		graph := jsonapi.Resolve(docs...)
		views = append(views, view.BuildEventView(graph, event))
	}

	root.logger.Debugf("Assembled %d event view(s), %d with heat details.", len(views), len(details))
	return views, nil
}

// eventViews loads from the cache, or from the API when --live is set.
func eventViews(root *rootCommand, cmd *cobra.Command) ([]view.EventView, error) {
	if live, _ := cmd.Flags().GetBool("live"); live {
		return loadEventViewsLive(root)
	}
	return loadEventViews(root)
}

// loadEventViewsLive assembles the event views from the live API: the
// meet's event nodes give the event list, each event's detail document is
// loaded separately and resolved together with the athlete documents.
// A failed event detail degrades to an event without heat data.
func loadEventViewsLive(root *rootCommand) ([]view.EventView, error) {
	if err := root.ValidateOptions([]string{"ApiHost", "Username", "Password", "MeetId"}); err != nil {
		return nil, err
	}
	swimApi, err := root.GetSwimApi()
	if err != nil {
		return nil, err
	}
	meetId := root.options.MeetId

	meetDoc, err := swimApi.GetMeet(meetId)
	if err != nil {
		return nil, err
	}
	if meet, found := model.MeetFromDocument(meetDoc); found {
		root.logger.Infof(`Loading meet "%s" from the API.`, meet.Name())
	}

	athletes, err := swimApi.ListAthletes(meetId)
	if err != nil {
		return nil, err
	}
	nodes, err := swimApi.ListEventNodes(meetId)
	if err != nil {
		return nil, err
	}

	events := model.EventsFromGraph(jsonapi.Resolve(model.EventNodesToDocument(nodes)))
	if len(events) == 0 {
		return nil, fmt.Errorf(`meet "%s" has no events`, meetId)
	}

	views := make([]view.EventView, 0, len(events))
	for _, event := range events {
		detail, err := swimApi.GetEvent(meetId, event.ID())
		if err != nil {
			root.logger.Warnf(`Cannot load event "%s": %s`, event.ID(), err)
			views = append(views, view.EventView{Event: event})
			continue
		}
		views = append(views, view.BuildEventView(jsonapi.Resolve(detail, athletes), event))
	}

	root.logger.Debugf("Assembled %d event view(s) from the API.", len(views))
	return views, nil
}
