package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/fixedstr"
	"go.uber.org/zap"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	fixedstr.SetLogger(logger)

	name, err := fixedstr.NewString[byte, [32]byte](fixedstr.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	wide, err := fixedstr.NewString[uint16, [512]uint16](fixedstr.Options{NoNullOptimization: true})
	if err != nil {
		log.Fatal(err)
	}
	prefix := []byte("user-")
	for i := 0; i < 10000; i++ {
		_ = name.Assign(prefix)
		_ = fixedstr.AppendInt(name, int64(-i))
		if fixedstr.AppendInt(wide, uint32(i)) != nil {
			wide.Clear()
		}
		_ = fixedstr.CompareStrings(name.String(), "user-0")
	}
	logger.Info("profile run finished",
		zap.String("last", name.String()),
		zap.Stringer("name_layout", name.Layout()),
		zap.Stringer("wide_layout", wide.Layout()),
	)
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
