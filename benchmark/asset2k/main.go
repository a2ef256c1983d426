package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxAssets int = 2000
var maxLocations int = 20
var httpHostPort string = "127.0.0.1:3000"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var assetTypes = []string{"Workstation", "Phone", "Camera", "Switch"}

var locationNames []string

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	locationNames = make([]string, maxLocations)
	for i := 0; i < maxLocations; i++ {
		locationNames[i] = "bench-" + uuid.NewString()
		insertLocation(locationNames[i])
	}
	fmt.Printf("inserted %v locations\n", maxLocations)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxAssets; i++ {
		i := i
		wg.Add(1)
		go func() {
			insertAsset(i)
			fmt.Printf("\rinserted asset %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted %v assets: used time=%v seconds, throughput=%v action/second\n",
		maxAssets, usedTime.Seconds(), float64(maxAssets)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for n := 0; n < maxAssets; n++ {
		wg.Add(1)
		go func() {
			doAction()
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid read actions for %v rounds: used time=%v seconds, throughput=%v action/second\n",
		maxAssets, usedTime.Seconds(), float64(maxAssets*2)/usedTime.Seconds(),
	)
}

func insertLocation(name string) {
	payload := map[string]any{
		"name": name,
		"area": map[string]float64{
			"x":      float64(rnd.Int31n(800)),
			"y":      float64(rnd.Int31n(600)),
			"width":  100,
			"height": 80,
		},
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/api/locations", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("unexpected status inserting location: %v", resp.StatusCode))
	}
}

func insertAsset(i int) {
	assetType := assetTypes[rnd.Intn(len(assetTypes))]
	data := map[string]any{
		"display_name": fmt.Sprintf("bench-asset-%v-%s", i, uuid.NewString()),
		"asset_tag":    fmt.Sprintf("PAT-%06d", i),
		"sector_name":  locationNames[rnd.Intn(len(locationNames))],
	}
	if assetType == "Workstation" {
		data["peripherals"] = []string{"keyboard", "mouse"}
		data["monitors"] = []map[string]string{
			{"serial_number": uuid.NewString()},
		}
	}

	payload := map[string]any{"type": assetType, "data": data}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/api/assets", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("unexpected status inserting asset: %v", resp.StatusCode))
	}
}

func doAction() {
	actions := []func(){
		genGetAction("/api/assets"),
		genGetAction("/api/assets/placements"),
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
	})
	for _, action := range actions {
		action()
		time.Sleep(time.Duration(10+rnd.Int31n(100)) * time.Millisecond)
	}
}

func genGetAction(path string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s%s", httpHostPort, path))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
