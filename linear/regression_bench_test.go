package linear

import (
	"math/rand/v2"
	"testing"

	"github.com/YuminosukeSato/ftlinreg/dataset"
)

// createBenchmarkData はベンチマーク用の走行距離と価格のデータを生成する
func createBenchmarkData(rows int) dataset.Dataset {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(42, 42))

	ds := make(dataset.Dataset, rows)
	for i := range ds {
		km := rng.Float64() * 250000
		// 価格 = 8500 - 0.0215 * km + ノイズ
		price := 8500 - 0.0215*km + (rng.Float64()-0.5)*1000
		ds[i] = dataset.Sample{Feature: km, Target: price}
	}
	return ds
}

// BenchmarkTrain はデフォルト設定での学習のベンチマークを実行する
func BenchmarkTrain(b *testing.B) {
	sizes := []struct {
		name string
		rows int
	}{
		{"Small_24", 24},
		{"Small_500", 500},
		{"Medium_1000", 1000}, // 並列処理の閾値
		{"Medium_2000", 2000},
		{"Large_10000", 10000},
		{"XLarge_100000", 100000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			ds := createBenchmarkData(size.rows)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Train(ds); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTrainSequential は閾値を上げて並列処理を無効化した版（比較用）
func BenchmarkTrainSequential(b *testing.B) {
	sizes := []struct {
		name string
		rows int
	}{
		{"Sequential_2000", 2000},
		{"Sequential_10000", 10000},
		{"Sequential_100000", 100000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			ds := createBenchmarkData(size.rows)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Train(ds, WithParallelThreshold(size.rows)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkPredictAll は推論のみのベンチマーク
func BenchmarkPredictAll(b *testing.B) {
	ds := createBenchmarkData(10000)
	m, err := Train(ds, WithEpochs(10))
	if err != nil {
		b.Fatal(err)
	}
	xs := ds.Features()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := PredictAll(xs, m); err != nil {
			b.Fatal(err)
		}
	}
}
