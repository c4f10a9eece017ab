package service_test

import (
	"context"
	"fmt"

	"github.com/AlenaMolokova/randkey/internal/app/models"
	"github.com/AlenaMolokova/randkey/internal/app/service"
	"github.com/AlenaMolokova/randkey/internal/app/storage/memory"
)

// Пример сохранения пресета и генерации ключа по нему
func Example_presetRoundTrip() {
	// Создаем хранилище в памяти и сервис
	ctx := context.Background()
	storage := memory.NewMemoryStorage()
	svc := service.NewPresetService(storage, storage, storage, storage, storage, 0)

	// Сохраняем пресет для PIN-кода из шести цифр
	p, err := svc.CreatePreset(ctx, models.PresetRequest{Name: "pin", Letters: "0", Symbols: "0", Digits: "6", Pool: "0123456789"})
	if err != nil {
		fmt.Printf("Ошибка при сохранении пресета: %v\n", err)
		return
	}
	fmt.Printf("Пресет: %s, цифр: %s\n", p.Name, p.Digits)

	// Загружаем генератор и создаем ключ
	r, err := svc.LoadGenerator(ctx, "pin")
	if err != nil {
		fmt.Printf("Ошибка при загрузке пресета: %v\n", err)
		return
	}
	if err := r.Generate(); err != nil {
		fmt.Printf("Ошибка генерации: %v\n", err)
		return
	}
	fmt.Printf("Длина ключа: %s\n", r.Len())

	// Output:
	// Пресет: pin, цифр: 6
	// Длина ключа: 6
}
